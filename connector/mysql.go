package connector

import (
	"maps"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

type mysqlProvider struct{}

func (mysqlProvider) DriverName() string { return "mysql" }
func (mysqlProvider) DefaultPort() int   { return 3306 }

// DSN uses the driver's own formatter, so escaping follows its rules.
// SSLMode maps to the tls parameter ("true", "skip-verify", "preferred").
func (mysqlProvider) DSN(cfg Config) (string, error) {
	mc := mysql.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Database
	mc.Timeout = cfg.ConnectTimeout
	mc.TLSConfig = cfg.SSLMode
	if len(cfg.Params) > 0 {
		mc.Params = maps.Clone(cfg.Params)
	}
	return mc.FormatDSN(), nil
}
