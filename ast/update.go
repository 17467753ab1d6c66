package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

// Assignment is one "column = value" pair of an UPDATE.
type Assignment struct {
	Column string
	Value  Node
}

type UpdateStmt struct {
	Table *Table
	Set   []Assignment
	Where *WhereClause
}

func (u *UpdateStmt) Type() NodeType         { return NodeUpdate }
func (u *UpdateStmt) Accept(v Visitor) error { return v.VisitUpdate(u) }
func (u *UpdateStmt) Fingerprint() uint64 {
	parts := make([]uint64, 0, 2*len(u.Set)+2)
	if u.Table != nil {
		parts = append(parts, u.Table.Fingerprint())
	}
	for _, a := range u.Set {
		parts = append(parts, utils.FingerprintString(a.Column), fingerprintOf(a.Value))
	}
	parts = append(parts, u.Where.Fingerprint())
	return utils.Fingerprint("update:", parts...)
}
