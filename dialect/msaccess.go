package dialect

type msAccess struct{}

func NewMSAccessDialect() Dialect {
	return msAccess{}
}

var msAccessLiterals = literalStyle{
	trueLit:    "TRUE",
	falseLit:   "FALSE",
	timeOpen:   "#",
	timeClose:  "#",
	timeLayout: "2006-01-02 15:04:05",
}

func (msAccess) Kind() Kind                     { return MSAccess }
func (msAccess) RowLimit() RowLimit             { return LimitTop }
func (msAccess) DeleteLimit() RowLimit          { return LimitNone }
func (msAccess) ConstraintPlacement() Placement { return PlaceInline }
func (msAccess) IdentityClause() string         { return "AUTOINCREMENT" }
func (msAccess) AnyChar() string                { return "?" }
func (msAccess) AnyString() string              { return "%" }

// Access databases are reached through ODBC, which is not linked in.
func (msAccess) DriverName() string { return "" }

func (msAccess) ModifyColumn(column, dataType string) string {
	return "ALTER COLUMN " + column + " " + dataType
}

func (msAccess) RenderValue(v any) string {
	return renderValue(v, msAccessLiterals)
}
