package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

type WhereClause struct {
	Condition Node
}

func NewWhereClause(cond Node) *WhereClause {
	return &WhereClause{Condition: cond}
}

func (w *WhereClause) Type() NodeType         { return NodeWhere }
func (w *WhereClause) Accept(v Visitor) error { return v.VisitWhereClause(w) }
func (w *WhereClause) Fingerprint() uint64 {
	if w == nil {
		return 0
	}
	return utils.Fingerprint("where:", fingerprintOf(w.Condition))
}
