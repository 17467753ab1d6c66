package connector

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/sqlb/dialect"
)

const sampleConfig = `
dialect: mysql
host: db.local
database: shop
username: app
password: secret
params:
  charset: utf8mb4
pool:
  max_open: 20
  max_idle: 4
  max_lifetime: 1h
connect_timeout: 5s
query_timeout: 30s
retry:
  max_retries: 3
  base_delay: 100ms
statement_cache_size: 256
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, dialect.MySQL, cfg.Dialect)
	assert.Equal(t, "db.local", cfg.Host)
	assert.Equal(t, 0, cfg.Port)
	assert.Equal(t, "utf8mb4", cfg.Params["charset"])
	assert.Equal(t, 20, cfg.Pool.MaxOpen)
	assert.Equal(t, time.Hour, cfg.Pool.MaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	require.NotNil(t, cfg.Retry)
	assert.Equal(t, 3, cfg.Retry.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.Retry.BaseDelay)
	assert.Equal(t, 256, cfg.StatementCacheSize)

	full := cfg.withDefaults(mysqlProvider{})
	assert.Equal(t, 3306, full.Port)
	assert.Equal(t, 4, full.Pool.MaxIdle)
	assert.Equal(t, 30*time.Minute, full.Pool.MaxIdleTime)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "dialect: [mysql"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "dialect: db2\nhost: x\n"))
	assert.ErrorIs(t, err, dialect.ErrUnsupportedDialect)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Dialect: dialect.Postgres, Host: "localhost"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(*Config) {}, false},
		{"DefaultDialect", func(c *Config) { c.Dialect = "" }, false},
		{"UnknownDialect", func(c *Config) { c.Dialect = "db2" }, true},
		{"NoHost", func(c *Config) { c.Host = "" }, true},
		{"PortTooLarge", func(c *Config) { c.Port = 70000 }, true},
		{"NegativePool", func(c *Config) { c.Pool.MaxOpen = -1 }, true},
		{"IdleAboveOpen", func(c *Config) { c.Pool.MaxOpen = 2; c.Pool.MaxIdle = 3 }, true},
		{"NegativeRetries", func(c *Config) { c.Retry = &RetryConfig{MaxRetries: -1} }, true},
		{"NegativeCache", func(c *Config) { c.StatementCacheSize = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
