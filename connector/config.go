package connector

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Konsultn-Engineering/sqlb/dialect"
)

// Config represents database connection configuration.
type Config struct {
	Dialect            dialect.Kind      `json:"dialect" yaml:"dialect"`
	Host               string            `json:"host" yaml:"host"`
	Port               int               `json:"port" yaml:"port"`
	Database           string            `json:"database" yaml:"database"`
	Username           string            `json:"username" yaml:"username"`
	Password           string            `json:"password" yaml:"password"`
	SSLMode            string            `json:"ssl_mode" yaml:"ssl_mode"`
	Params             map[string]string `json:"params" yaml:"params"`
	Pool               PoolConfig        `json:"pool" yaml:"pool"`
	ConnectTimeout     time.Duration     `json:"connect_timeout" yaml:"connect_timeout"`
	QueryTimeout       time.Duration     `json:"query_timeout" yaml:"query_timeout"`
	Retry              *RetryConfig      `json:"retry,omitempty" yaml:"retry,omitempty"`
	StatementCacheSize int               `json:"statement_cache_size" yaml:"statement_cache_size"`
}

// PoolConfig defines connection pool settings.
type PoolConfig struct {
	MaxOpen     int           `json:"max_open" yaml:"max_open"`
	MaxIdle     int           `json:"max_idle" yaml:"max_idle"`
	MaxLifetime time.Duration `json:"max_lifetime" yaml:"max_lifetime"`
	MaxIdleTime time.Duration `json:"max_idle_time" yaml:"max_idle_time"`
}

// RetryConfig defines connection retry behavior.
type RetryConfig struct {
	MaxRetries int           `json:"max_retries" yaml:"max_retries"`
	BaseDelay  time.Duration `json:"base_delay" yaml:"base_delay"`
	MaxDelay   time.Duration `json:"max_delay" yaml:"max_delay"`
	Backoff    float64       `json:"backoff" yaml:"backoff"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("connector: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("connector: parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration without touching the network.
func (c Config) Validate() error {
	if _, err := dialect.For(c.Dialect); err != nil {
		return fmt.Errorf("connector: %w", err)
	}
	if c.Host == "" {
		return fmt.Errorf("connector: host is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("connector: invalid port: %d", c.Port)
	}
	if c.Pool.MaxOpen < 0 || c.Pool.MaxIdle < 0 {
		return fmt.Errorf("connector: pool sizes must not be negative")
	}
	if c.Pool.MaxOpen > 0 && c.Pool.MaxIdle > c.Pool.MaxOpen {
		return fmt.Errorf("connector: max_idle (%d) exceeds max_open (%d)", c.Pool.MaxIdle, c.Pool.MaxOpen)
	}
	if c.Retry != nil && c.Retry.MaxRetries < 0 {
		return fmt.Errorf("connector: max_retries must not be negative")
	}
	if c.StatementCacheSize < 0 {
		return fmt.Errorf("connector: statement_cache_size must not be negative")
	}
	return nil
}

// withDefaults fills the port of the provider and the pool limits.
func (c Config) withDefaults(p Provider) Config {
	if c.Port == 0 {
		c.Port = p.DefaultPort()
	}
	if c.Pool.MaxOpen <= 0 {
		c.Pool.MaxOpen = 10
	}
	if c.Pool.MaxIdle == 0 {
		c.Pool.MaxIdle = 5
	}
	if c.Pool.MaxIdle > c.Pool.MaxOpen {
		c.Pool.MaxIdle = c.Pool.MaxOpen
	}
	if c.Pool.MaxLifetime == 0 {
		c.Pool.MaxLifetime = time.Hour
	}
	if c.Pool.MaxIdleTime == 0 {
		c.Pool.MaxIdleTime = 30 * time.Minute
	}
	return c
}
