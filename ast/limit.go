package ast

import (
	"strconv"

	"github.com/Konsultn-Engineering/sqlb/utils"
)

// LimitClause caps the number of rows. How it is written depends on the dialect.
type LimitClause struct {
	Count int
}

func NewLimitClause(count int) *LimitClause {
	return &LimitClause{Count: count}
}

func (l *LimitClause) Type() NodeType         { return NodeLimit }
func (l *LimitClause) Accept(v Visitor) error { return v.VisitLimitClause(l) }
func (l *LimitClause) Fingerprint() uint64 {
	if l == nil {
		return 0
	}
	return utils.FingerprintString("limit:" + strconv.Itoa(l.Count))
}

type UnionClause struct {
	All    bool
	Select *SelectStmt
}

func (u *UnionClause) Type() NodeType         { return NodeUnion }
func (u *UnionClause) Accept(v Visitor) error { return v.VisitUnionClause(u) }
func (u *UnionClause) Fingerprint() uint64 {
	tag := "union:"
	if u.All {
		tag += "all"
	}
	var sel uint64
	if u.Select != nil {
		sel = u.Select.Fingerprint()
	}
	return utils.Fingerprint(tag, sel)
}
