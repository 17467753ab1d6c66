package dialect

type oracle struct{}

func NewOracleDialect() Dialect {
	return oracle{}
}

var oracleLiterals = literalStyle{
	trueLit:    "1",
	falseLit:   "0",
	timeOpen:   "TIMESTAMP '",
	timeClose:  "'",
	timeLayout: "2006-01-02 15:04:05",
}

func (oracle) Kind() Kind                     { return Oracle }
func (oracle) RowLimit() RowLimit             { return LimitRownum }
func (oracle) DeleteLimit() RowLimit          { return LimitRownum }
func (oracle) ConstraintPlacement() Placement { return PlaceInline }
func (oracle) IdentityClause() string         { return "GENERATED ALWAYS AS IDENTITY" }
func (oracle) AnyChar() string                { return "_" }
func (oracle) AnyString() string              { return "%" }

// No Oracle driver is linked into this module.
func (oracle) DriverName() string { return "" }

func (oracle) ModifyColumn(column, dataType string) string {
	return "MODIFY " + column + " " + dataType
}

func (oracle) RenderValue(v any) string {
	return renderValue(v, oracleLiterals)
}
