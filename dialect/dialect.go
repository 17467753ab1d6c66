package dialect

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a SQL family.
type Kind string

const (
	MySQL     Kind = "mysql"
	Oracle    Kind = "oracle"
	SQLServer Kind = "sqlserver"
	MSAccess  Kind = "msaccess"
	Postgres  Kind = "postgres"
)

// Default is used when no dialect was chosen.
const Default = MySQL

var ErrUnsupportedDialect = errors.New("dialect: unsupported SQL family")

// UnsupportedError reports the dialect value that could not be resolved.
type UnsupportedError struct {
	Kind Kind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("dialect: unsupported SQL family %q", string(e.Kind))
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupportedDialect
}

// RowLimit is the way a dialect caps the number of rows a statement touches.
type RowLimit int

const (
	// LimitNone means the statement kind cannot be limited in this dialect.
	LimitNone RowLimit = iota
	// LimitTrailing appends "LIMIT n" at the end of the statement.
	LimitTrailing
	// LimitTop inserts "TOP n" right after the statement verb.
	LimitTop
	// LimitRownum ANDs "ROWNUM <= n" into the WHERE condition.
	LimitRownum
)

// Placement decides where column level constraints are written in CREATE TABLE.
type Placement int

const (
	// PlaceInline keeps every constraint next to its column.
	PlaceInline Placement = iota
	// PlaceTrailing keeps NOT NULL, DEFAULT and identity next to the column and
	// moves UNIQUE, PRIMARY KEY, FOREIGN KEY and CHECK behind the column list.
	PlaceTrailing
)

type Dialect interface {
	Kind() Kind
	// RowLimit is the strategy used for SELECT row limits.
	RowLimit() RowLimit
	// DeleteLimit is the strategy used for DELETE row limits.
	DeleteLimit() RowLimit
	ConstraintPlacement() Placement
	// IdentityClause is the column suffix for auto generated keys.
	IdentityClause() string
	// ModifyColumn renders the ALTER TABLE action that changes a column type.
	ModifyColumn(column, dataType string) string
	// AnyChar is the LIKE wildcard matching exactly one character.
	AnyChar() string
	// AnyString is the LIKE wildcard matching any run of characters.
	AnyString() string
	RenderValue(v any) string
	// DriverName is the database/sql driver registered for this dialect, or "".
	DriverName() string
}

var registry = map[Kind]Dialect{
	MySQL:     NewMySQLDialect(),
	Oracle:    NewOracleDialect(),
	SQLServer: NewSQLServerDialect(),
	MSAccess:  NewMSAccessDialect(),
	Postgres:  NewPostgresDialect(),
}

// For resolves the strategy for k. The zero Kind resolves to Default.
func For(k Kind) (Dialect, error) {
	if k == "" {
		k = Default
	}
	d, ok := registry[k]
	if !ok {
		return nil, &UnsupportedError{Kind: k}
	}
	return d, nil
}

// ParseKind accepts the canonical names plus a few common aliases, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mysql", "mariadb":
		return MySQL, nil
	case "oracle":
		return Oracle, nil
	case "sqlserver", "mssql", "sql_server":
		return SQLServer, nil
	case "msaccess", "access", "ms_access":
		return MSAccess, nil
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	default:
		return "", &UnsupportedError{Kind: Kind(s)}
	}
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) String() string { return string(k) }

// Kinds lists every supported dialect.
func Kinds() []Kind {
	return []Kind{MySQL, Oracle, SQLServer, MSAccess, Postgres}
}
