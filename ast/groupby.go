package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

type GroupByClause struct {
	Exprs []Node
}

func (g *GroupByClause) Type() NodeType         { return NodeGroupBy }
func (g *GroupByClause) Accept(v Visitor) error { return v.VisitGroupBy(g) }
func (g *GroupByClause) Fingerprint() uint64 {
	if g == nil {
		return 0
	}
	parts := make([]uint64, len(g.Exprs))
	for i, expr := range g.Exprs {
		parts[i] = fingerprintOf(expr)
	}
	return utils.Fingerprint("groupby:", parts...)
}
