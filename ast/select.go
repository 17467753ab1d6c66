package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

type SelectStmt struct {
	Distinct bool
	Columns  []Node
	From     *Table
	Joins    []*JoinClause
	Where    *WhereClause
	GroupBy  *GroupByClause
	Having   *WhereClause
	Unions   []*UnionClause
	OrderBy  []*OrderByClause
	Limit    *LimitClause
}

func NewSelectStmt() *SelectStmt {
	return &SelectStmt{}
}

func (s *SelectStmt) Type() NodeType         { return NodeSelect }
func (s *SelectStmt) Accept(v Visitor) error { return v.VisitSelect(s) }
func (s *SelectStmt) Fingerprint() uint64 {
	parts := make([]uint64, 0, len(s.Columns)+len(s.Joins)+len(s.Unions)+len(s.OrderBy)+8)
	if s.Distinct {
		parts = append(parts, 1)
	} else {
		parts = append(parts, 0)
	}
	for _, col := range s.Columns {
		parts = append(parts, fingerprintOf(col))
	}
	// separates the column list from the clauses
	parts = append(parts, ^uint64(0))
	if s.From != nil {
		parts = append(parts, s.From.Fingerprint())
	} else {
		parts = append(parts, 0)
	}
	for _, j := range s.Joins {
		parts = append(parts, j.Fingerprint())
	}
	parts = append(parts, s.Where.Fingerprint(), s.GroupBy.Fingerprint(), utils.Mix64(1, s.Having.Fingerprint()))
	for _, u := range s.Unions {
		parts = append(parts, u.Fingerprint())
	}
	for _, o := range s.OrderBy {
		parts = append(parts, o.Fingerprint())
	}
	parts = append(parts, s.Limit.Fingerprint())
	return utils.Fingerprint("select:", parts...)
}
