// Package sqlb builds SQL statements for MySQL, Oracle, SQL Server, MS Access
// and Postgres from one fluent description:
//
//	sql, err := sqlb.New(sqlb.WithDialect(sqlb.Oracle)).
//		SelectAllLimit(3).From("Customers").
//		Where("Country").Eq("Germany").
//		Build()
//	// SELECT * FROM Customers WHERE Country = 'Germany' AND ROWNUM <= 3
package sqlb

import (
	"context"

	"github.com/Konsultn-Engineering/sqlb/cache"
	"github.com/Konsultn-Engineering/sqlb/connector"
	"github.com/Konsultn-Engineering/sqlb/dialect"
	"github.com/Konsultn-Engineering/sqlb/query"
)

type (
	Builder    = query.Builder
	Option     = query.Option
	Condition  = query.Condition
	Pattern    = query.Pattern
	Dialect    = dialect.Kind
	Config     = connector.Config
	Connection = connector.Connection
)

const (
	MySQL     = dialect.MySQL
	Oracle    = dialect.Oracle
	SQLServer = dialect.SQLServer
	MSAccess  = dialect.MSAccess
	Postgres  = dialect.Postgres
)

var (
	WithDialect = query.WithDialect
	WithCache   = query.WithCache
	WithLogger  = query.WithLogger

	WithIntrospector = query.WithIntrospector

	Col        = query.Col
	Not        = query.Not
	Exists     = query.Exists
	NotExists  = query.NotExists
	Ident      = query.Ident
	Raw        = query.Raw
	Set        = query.Set
	NewPattern = query.NewPattern
)

func New(opts ...Option) *Builder {
	return query.New(opts...)
}

// NewCache returns a statement cache that builders and connections can share.
func NewCache(size int) *cache.Statements {
	return cache.NewStatements(size)
}

// Connect opens the database described by cfg.
func Connect(ctx context.Context, cfg Config, opts ...connector.Option) (*Connection, error) {
	return connector.Open(ctx, cfg, opts...)
}
