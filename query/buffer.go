package query

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Konsultn-Engineering/sqlb/ast"
	"github.com/Konsultn-Engineering/sqlb/cache"
	"github.com/Konsultn-Engineering/sqlb/dialect"
	"github.com/Konsultn-Engineering/sqlb/visitor"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Buffer holds one statement under construction. The statement tree is only
// turned into text by Build, which is when the dialect decides where the row
// limit goes and how the WHERE condition is written.
type Buffer struct {
	dialect  dialect.Kind
	stmt     ast.Node
	rowLimit int
	err      error
	cache    *cache.Statements
	logger   *slog.Logger
}

func newBuffer(kind dialect.Kind, stmt ast.Node, c *cache.Statements, logger *slog.Logger) *Buffer {
	if logger == nil {
		logger = discardLogger
	}
	return &Buffer{dialect: kind, stmt: stmt, cache: c, logger: logger}
}

func (b *Buffer) SetDialect(kind dialect.Kind) {
	b.dialect = kind
}

func (b *Buffer) Dialect() dialect.Kind {
	if b.dialect == "" {
		return dialect.Default
	}
	return b.dialect
}

// SetRowLimit records a limit for Build to apply. A non-positive n clears it.
func (b *Buffer) SetRowLimit(n int) {
	if n < 0 {
		n = 0
	}
	b.rowLimit = n
}

// SetWhere replaces the WHERE condition of a SELECT, UPDATE or DELETE.
func (b *Buffer) SetWhere(c Condition) {
	where := ast.NewWhereClause(c.node)
	switch s := b.stmt.(type) {
	case *ast.SelectStmt:
		s.Where = where
	case *ast.UpdateStmt:
		s.Where = where
	case *ast.DeleteStmt:
		s.Where = where
	default:
		b.fail(fmt.Errorf("query: WHERE is not valid for %T", b.stmt))
	}
}

// where returns the current WHERE condition, or the zero Condition.
func (b *Buffer) where() Condition {
	var w *ast.WhereClause
	switch s := b.stmt.(type) {
	case *ast.SelectStmt:
		w = s.Where
	case *ast.UpdateStmt:
		w = s.Where
	case *ast.DeleteStmt:
		w = s.Where
	}
	if w == nil {
		return Condition{}
	}
	return Condition{node: w.Condition}
}

// fail keeps the first error; Build reports it.
func (b *Buffer) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build renders the statement. It can be called any number of times and
// always returns the same text, since neither the tree nor the pending limit
// is consumed.
func (b *Buffer) Build() (string, error) {
	sql, err := b.build()
	if err != nil {
		b.logger.Warn("sqlb: build failed", "dialect", b.Dialect(), "statement", fmt.Sprintf("%T", b.stmt), "error", err)
		return "", err
	}
	return sql, nil
}

func (b *Buffer) build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	d, err := dialect.For(b.Dialect())
	if err != nil {
		return "", err
	}
	stmt, err := b.resolved()
	if err != nil {
		return "", err
	}

	if b.cache == nil {
		return visitor.Render(stmt, d)
	}
	key := cache.Key(stmt.Fingerprint(), string(d.Kind()))
	return b.cache.GetOrRender(key, func() (string, error) {
		return visitor.Render(stmt, d)
	})
}

// resolved returns the tree with the pending row limit attached. The limit
// goes on a shallow copy so the buffer itself never changes.
func (b *Buffer) resolved() (ast.Node, error) {
	if b.stmt == nil {
		return nil, visitor.ErrNilStatement
	}
	if b.rowLimit == 0 {
		return b.stmt, nil
	}
	switch s := b.stmt.(type) {
	case *ast.SelectStmt:
		cp := *s
		cp.Limit = ast.NewLimitClause(b.rowLimit)
		return &cp, nil
	case *ast.DeleteStmt:
		cp := *s
		cp.Limit = ast.NewLimitClause(b.rowLimit)
		return &cp, nil
	default:
		return nil, fmt.Errorf("%w: %T", visitor.ErrRowLimitUnsupported, b.stmt)
	}
}
