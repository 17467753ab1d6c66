// Package query is the fluent front end: staged builders that assemble a
// statement tree and render it for one SQL dialect at Build time.
package query

import (
	"log/slog"

	"github.com/Konsultn-Engineering/sqlb/ast"
	"github.com/Konsultn-Engineering/sqlb/cache"
	"github.com/Konsultn-Engineering/sqlb/dialect"
	"github.com/Konsultn-Engineering/sqlb/schema"
)

// Builder is the entry point of every statement. Each verb starts a fresh
// Buffer, so one Builder can produce any number of independent statements.
// A Builder is not safe for concurrent use.
type Builder struct {
	dialect  dialect.Kind
	rowLimit int
	cache    *cache.Statements
	logger   *slog.Logger
	models   *schema.Introspector
}

type Option func(*Builder)

func WithDialect(kind dialect.Kind) Option {
	return func(b *Builder) {
		b.dialect = kind
	}
}

// WithCache memoizes rendered text. The cache may be shared between builders.
func WithCache(c *cache.Statements) Option {
	return func(b *Builder) {
		b.cache = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithIntrospector sets how CreateTableFor names tables and columns.
func WithIntrospector(in *schema.Introspector) Option {
	return func(b *Builder) {
		b.models = in
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{dialect: dialect.Default}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Dialect switches the dialect for the statements started afterwards.
func (b *Builder) Dialect(kind dialect.Kind) *Builder {
	b.dialect = kind
	return b
}

// LimitOutputRows caps the rows of the next SELECT or DELETE only.
func (b *Builder) LimitOutputRows(n int) *Builder {
	b.rowLimit = n
	return b
}

// start creates the buffer for a new statement and hands it the pending limit.
func (b *Builder) start(stmt ast.Node) *Buffer {
	buf := newBuffer(b.dialect, stmt, b.cache, b.logger)
	buf.SetRowLimit(b.rowLimit)
	b.rowLimit = 0
	return buf
}

// Final is a complete statement that can only be built.
type Final struct {
	buf *Buffer
}

func (f *Final) Build() (string, error) {
	return f.buf.Build()
}

// Buffer exposes the underlying statement buffer.
func (f *Final) Buffer() *Buffer {
	return f.buf
}
