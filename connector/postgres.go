package connector

import (
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type postgresProvider struct{}

// DriverName is the name pgx/v5/stdlib registers.
func (postgresProvider) DriverName() string { return "pgx" }
func (postgresProvider) DefaultPort() int   { return 5432 }

// DSN creates a PostgreSQL connection URL and parses it with pgx.
func (postgresProvider) DSN(cfg Config) (string, error) {
	b := NewDSNBuilder("postgres").
		Auth(cfg.Username, cfg.Password).
		Host(cfg.Host, cfg.Port).
		Database(cfg.Database).
		Param("sslmode", cfg.SSLMode)
	if cfg.ConnectTimeout > 0 {
		b.Param("connect_timeout", strconv.Itoa(int(cfg.ConnectTimeout.Seconds())))
	}
	b.Params(cfg.Params)
	if err := b.Validate(); err != nil {
		return "", fmt.Errorf("postgres dsn: %w", err)
	}

	dsn := b.Build()
	if _, err := pgx.ParseConfig(dsn); err != nil {
		return "", fmt.Errorf("postgres dsn: %w", err)
	}
	return dsn, nil
}
