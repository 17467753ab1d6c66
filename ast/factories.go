package ast

// Columns turns plain names into column nodes. Names are kept verbatim so
// "Orders.OrderID" or "COUNT(CustomerID)" pass through unchanged.
func Columns(names ...string) []Node {
	nodes := make([]Node, len(names))
	for i, name := range names {
		nodes[i] = NewColumn("", name, "")
	}
	return nodes
}

func AllColumns() []Node {
	return []Node{NewColumn("", "*", "")}
}

func And(left, right Node) *BinaryExpr {
	return NewBinaryExpr(left, OpAnd, right)
}

func Or(left, right Node) *BinaryExpr {
	return NewBinaryExpr(left, OpOr, right)
}

func Not(expr Node) *UnaryExpr {
	return NewUnaryExpr(expr, OpNot, true)
}

func Compare(column string, op string, value Node) *BinaryExpr {
	return NewBinaryExpr(NewColumn("", column, ""), op, value)
}

func Between(column string, low, high Node) *BinaryExpr {
	return NewBinaryExpr(NewColumn("", column, ""), OpBetween, &Range{Low: low, High: high})
}

func IsNull(column string) *UnaryExpr {
	return NewUnaryExpr(NewColumn("", column, ""), OpIsNull, false)
}

func IsNotNull(column string) *UnaryExpr {
	return NewUnaryExpr(NewColumn("", column, ""), OpIsNotNull, false)
}

func Exists(subquery Node) *UnaryExpr {
	return NewUnaryExpr(NewSubqueryExpr(subquery), OpExists, true)
}

func NotExists(subquery Node) *UnaryExpr {
	return NewUnaryExpr(NewSubqueryExpr(subquery), OpNotExists, true)
}

func OrderBy(column string, dir OrderDir) *OrderByClause {
	return NewOrderByClause(NewColumn("", column, ""), dir)
}
