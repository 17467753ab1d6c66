package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

// OrderDir is the sort direction of one ORDER BY key.
type OrderDir int

const (
	// OrderDefault writes no keyword and leaves the database default (ascending).
	OrderDefault OrderDir = iota
	OrderAsc
	OrderDesc
)

type OrderByClause struct {
	Expr Node
	Dir  OrderDir
}

func NewOrderByClause(expr Node, dir OrderDir) *OrderByClause {
	return &OrderByClause{Expr: expr, Dir: dir}
}

func (o *OrderByClause) Type() NodeType         { return NodeOrderBy }
func (o *OrderByClause) Accept(v Visitor) error { return v.VisitOrderByClause(o) }
func (o *OrderByClause) Fingerprint() uint64 {
	tag := "order:"
	switch o.Dir {
	case OrderAsc:
		tag += "asc"
	case OrderDesc:
		tag += "desc"
	}
	return utils.Fingerprint(tag, fingerprintOf(o.Expr))
}
