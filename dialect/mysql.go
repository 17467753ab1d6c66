package dialect

type mysql struct{}

func NewMySQLDialect() Dialect {
	return mysql{}
}

func (mysql) Kind() Kind                     { return MySQL }
func (mysql) RowLimit() RowLimit             { return LimitTrailing }
func (mysql) DeleteLimit() RowLimit          { return LimitTrailing }
func (mysql) ConstraintPlacement() Placement { return PlaceTrailing }
func (mysql) IdentityClause() string         { return "AUTO_INCREMENT" }
func (mysql) AnyChar() string                { return "_" }
func (mysql) AnyString() string              { return "%" }
func (mysql) DriverName() string             { return "mysql" }

func (mysql) ModifyColumn(column, dataType string) string {
	return "MODIFY COLUMN " + column + " " + dataType
}

func (mysql) RenderValue(v any) string {
	return renderValue(v, ansiLiterals)
}
