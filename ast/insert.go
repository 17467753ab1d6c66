package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

type InsertStmt struct {
	Table   *Table
	Columns []string
	Values  [][]Node
}

func (i *InsertStmt) Type() NodeType         { return NodeInsert }
func (i *InsertStmt) Accept(v Visitor) error { return v.VisitInsert(i) }
func (i *InsertStmt) Fingerprint() uint64 {
	parts := []uint64{utils.FingerprintStrings("cols:", i.Columns...)}
	if i.Table != nil {
		parts = append(parts, i.Table.Fingerprint())
	}
	for _, row := range i.Values {
		parts = append(parts, ^uint64(0))
		for _, val := range row {
			parts = append(parts, fingerprintOf(val))
		}
	}
	return utils.Fingerprint("insert:", parts...)
}
