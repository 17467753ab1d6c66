package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

// Column is an identifier written verbatim, optionally qualified and aliased.
type Column struct {
	Table string
	Name  string
	Alias string
}

func NewColumn(table, name, alias string) *Column {
	return &Column{Table: table, Name: name, Alias: alias}
}

func (c *Column) Type() NodeType { return NodeColumn }

func (c *Column) Accept(v Visitor) error { return v.VisitColumn(c) }

func (c *Column) Fingerprint() uint64 {
	return utils.FingerprintStrings("col:", c.Table, c.Name, c.Alias)
}
