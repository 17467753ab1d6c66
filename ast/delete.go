package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

type DeleteStmt struct {
	Table *Table
	Where *WhereClause
	Limit *LimitClause
}

func (d *DeleteStmt) Type() NodeType         { return NodeDelete }
func (d *DeleteStmt) Accept(v Visitor) error { return v.VisitDelete(d) }
func (d *DeleteStmt) Fingerprint() uint64 {
	var table uint64
	if d.Table != nil {
		table = d.Table.Fingerprint()
	}
	return utils.Fingerprint("delete:", table, d.Where.Fingerprint(), d.Limit.Fingerprint())
}
