package dialect

type postgres struct{}

func NewPostgresDialect() Dialect {
	return postgres{}
}

func (postgres) Kind() Kind                     { return Postgres }
func (postgres) RowLimit() RowLimit             { return LimitTrailing }
func (postgres) ConstraintPlacement() Placement { return PlaceInline }
func (postgres) IdentityClause() string         { return "GENERATED ALWAYS AS IDENTITY" }
func (postgres) AnyChar() string                { return "_" }
func (postgres) AnyString() string              { return "%" }
func (postgres) DriverName() string             { return "pgx" }

// DELETE ... LIMIT is not valid PostgreSQL.
func (postgres) DeleteLimit() RowLimit { return LimitNone }

func (postgres) ModifyColumn(column, dataType string) string {
	return "ALTER COLUMN " + column + " TYPE " + dataType
}

func (postgres) RenderValue(v any) string {
	return renderValue(v, ansiLiterals)
}
