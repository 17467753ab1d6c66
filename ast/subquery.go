package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

type SubqueryExpr struct {
	Stmt Node
}

func NewSubqueryExpr(stmt Node) *SubqueryExpr {
	return &SubqueryExpr{Stmt: stmt}
}

func (s *SubqueryExpr) Type() NodeType {
	return NodeSubqueryExpr
}

func (s *SubqueryExpr) Accept(v Visitor) error {
	return v.VisitSubqueryExpr(s)
}

func (s *SubqueryExpr) Fingerprint() uint64 {
	return utils.Fingerprint("subquery:", fingerprintOf(s.Stmt))
}
