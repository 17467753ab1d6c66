package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

type Table struct {
	Schema string
	Name   string
	Alias  string
}

func NewTable(schema, name, alias string) *Table {
	return &Table{Schema: schema, Name: name, Alias: alias}
}

func (t *Table) Type() NodeType         { return NodeTable }
func (t *Table) Accept(v Visitor) error { return v.VisitTable(t) }
func (t *Table) Fingerprint() uint64 {
	return utils.FingerprintStrings("table:", t.Schema, t.Name, t.Alias)
}
