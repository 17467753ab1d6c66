package dialect

type sqlServer struct{}

func NewSQLServerDialect() Dialect {
	return sqlServer{}
}

var sqlServerLiterals = literalStyle{
	trueLit:    "1",
	falseLit:   "0",
	timeOpen:   "'",
	timeClose:  "'",
	timeLayout: "2006-01-02T15:04:05",
}

func (sqlServer) Kind() Kind                     { return SQLServer }
func (sqlServer) RowLimit() RowLimit             { return LimitTop }
func (sqlServer) DeleteLimit() RowLimit          { return LimitTop }
func (sqlServer) ConstraintPlacement() Placement { return PlaceInline }
func (sqlServer) IdentityClause() string         { return "IDENTITY(1,1)" }
func (sqlServer) AnyChar() string                { return "?" }
func (sqlServer) AnyString() string              { return "%" }
func (sqlServer) DriverName() string             { return "sqlserver" }

func (sqlServer) ModifyColumn(column, dataType string) string {
	return "ALTER COLUMN " + column + " " + dataType
}

func (sqlServer) RenderValue(v any) string {
	return renderValue(v, sqlServerLiterals)
}
