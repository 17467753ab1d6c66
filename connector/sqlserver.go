package connector

import (
	"fmt"
	"strconv"

	_ "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/msdsn"
)

type sqlServerProvider struct{}

func (sqlServerProvider) DriverName() string { return "sqlserver" }
func (sqlServerProvider) DefaultPort() int   { return 1433 }

// DSN builds the sqlserver:// URL form. The URL path names an instance, so
// the database goes in a parameter. The result is checked with the driver's
// parser before it is handed to sql.Open.
func (sqlServerProvider) DSN(cfg Config) (string, error) {
	b := NewDSNBuilder("sqlserver").
		Auth(cfg.Username, cfg.Password).
		Host(cfg.Host, cfg.Port).
		Param("database", cfg.Database).
		Param("encrypt", cfg.SSLMode)
	if cfg.ConnectTimeout > 0 {
		b.Param("connection timeout", strconv.Itoa(int(cfg.ConnectTimeout.Seconds())))
	}
	b.Params(cfg.Params)
	if err := b.Validate(); err != nil {
		return "", fmt.Errorf("sqlserver dsn: %w", err)
	}

	dsn := b.Build()
	if _, err := msdsn.Parse(dsn); err != nil {
		return "", fmt.Errorf("sqlserver dsn: %w", err)
	}
	return dsn, nil
}
