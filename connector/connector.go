// Package connector opens a database for a dialect and runs built statements
// against it.
package connector

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Konsultn-Engineering/sqlb/cache"
	"github.com/Konsultn-Engineering/sqlb/dialect"
	"github.com/Konsultn-Engineering/sqlb/query"
)

// Buildable is anything that renders to SQL text, such as every stage of a
// query.Builder chain that can be built.
type Buildable interface {
	Build() (string, error)
}

// Connection pairs a *sql.DB with the dialect its statements are built in.
type Connection struct {
	db           *sql.DB
	kind         dialect.Kind
	cache        *cache.Statements
	logger       *slog.Logger
	queryTimeout time.Duration

	statements atomic.Uint64
	failures   atomic.Uint64
}

type Option func(*Connection)

func WithLogger(l *slog.Logger) Option {
	return func(c *Connection) {
		c.logger = l
	}
}

// WithCache shares a statement cache with the builders of this connection.
func WithCache(s *cache.Statements) Option {
	return func(c *Connection) {
		c.cache = s
	}
}

// WithQueryTimeout bounds each Exec when the context has no deadline of its own.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *Connection) {
		c.queryTimeout = d
	}
}

// NewConnection wraps an already open database.
func NewConnection(db *sql.DB, kind dialect.Kind, opts ...Option) *Connection {
	if kind == "" {
		kind = dialect.Default
	}
	c := &Connection{db: db, kind: kind}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Open validates cfg, opens the driver of its dialect and pings the server,
// retrying as configured.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Connection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	provider, err := ProviderFor(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults(provider)

	dsn, err := provider.DSN(cfg)
	if err != nil {
		return nil, fmt.Errorf("connector: %w", err)
	}
	db, err := sql.Open(provider.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("connector: open %s: %w", cfg.Dialect, err)
	}
	db.SetMaxOpenConns(cfg.Pool.MaxOpen)
	db.SetMaxIdleConns(cfg.Pool.MaxIdle)
	db.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	db.SetConnMaxIdleTime(cfg.Pool.MaxIdleTime)

	base := []Option{WithQueryTimeout(cfg.QueryTimeout)}
	if cfg.StatementCacheSize > 0 {
		base = append(base, WithCache(cache.NewStatements(cfg.StatementCacheSize)))
	}
	conn := NewConnection(db, cfg.Dialect, append(base, opts...)...)

	err = retry(ctx, cfg.Retry, func(ctx context.Context) error {
		if cfg.ConnectTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
			defer cancel()
		}
		err := db.PingContext(ctx)
		if err != nil {
			conn.logger.Warn("sqlb: ping failed", "dialect", cfg.Dialect, "host", cfg.Host, "error", err)
		}
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connector: connect to %s at %s: %w", cfg.Dialect, cfg.Host, err)
	}

	conn.logger.Info("sqlb: connected", "dialect", cfg.Dialect, "host", cfg.Host, "database", cfg.Database)
	return conn, nil
}

// Builder starts statements in this connection's dialect, sharing its cache
// and logger.
func (c *Connection) Builder() *query.Builder {
	return query.New(
		query.WithDialect(c.kind),
		query.WithCache(c.cache),
		query.WithLogger(c.logger),
	)
}

func (c *Connection) DB() *sql.DB {
	return c.db
}

func (c *Connection) Dialect() dialect.Kind {
	return c.kind
}

// Exec builds and executes a statement that returns no rows.
func (c *Connection) Exec(ctx context.Context, b Buildable) (sql.Result, error) {
	text, err := c.build(b)
	if err != nil {
		return nil, err
	}
	if _, ok := ctx.Deadline(); !ok && c.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.queryTimeout)
		defer cancel()
	}

	res, err := c.db.ExecContext(ctx, text)
	if err != nil {
		c.failures.Add(1)
		return nil, fmt.Errorf("connector: exec: %w", err)
	}
	return res, nil
}

// Query builds and runs a statement that returns rows. The caller closes
// the rows; the context governs their whole lifetime.
func (c *Connection) Query(ctx context.Context, b Buildable) (*sql.Rows, error) {
	text, err := c.build(b)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, text)
	if err != nil {
		c.failures.Add(1)
		return nil, fmt.Errorf("connector: query: %w", err)
	}
	return rows, nil
}

func (c *Connection) build(b Buildable) (string, error) {
	if b == nil {
		return "", fmt.Errorf("connector: nil statement")
	}
	text, err := b.Build()
	if err != nil {
		c.failures.Add(1)
		return "", fmt.Errorf("connector: build: %w", err)
	}
	c.statements.Add(1)
	c.logger.Debug("sqlb: statement", "dialect", c.kind, "sql", text)
	return text, nil
}

// Health checks the connection health.
func (c *Connection) Health(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Connection) Stats() ConnectionStats {
	s := poolStats(c.db.Stats())
	s.Statements = c.statements.Load()
	s.Failures = c.failures.Load()
	return s
}

func (c *Connection) Close() error {
	return c.db.Close()
}
