package ast

import (
	"strconv"

	"github.com/Konsultn-Engineering/sqlb/utils"
)

// DataType is a column type such as VARCHAR(255), DECIMAL(9,3) or ENUM('X','Y').
type DataType struct {
	Name string
	Args []int
	Enum []string
}

func (d *DataType) Fingerprint() uint64 {
	if d == nil {
		return 0
	}
	parts := make([]uint64, 0, len(d.Args)+2)
	parts = append(parts, utils.FingerprintString(d.Name))
	for _, a := range d.Args {
		parts = append(parts, uint64(a))
	}
	parts = append(parts, ^uint64(0), utils.FingerprintStrings("enum:", d.Enum...))
	return utils.Fingerprint("type:", parts...)
}

type ConstraintKind int

const (
	ConstraintNotNull ConstraintKind = iota
	ConstraintUnique
	ConstraintPrimaryKey
	ConstraintForeignKey
	ConstraintCheck
	ConstraintDefault
	ConstraintIdentity
)

// Relocatable reports whether a dialect with trailing placement moves the
// constraint behind the column list.
func (k ConstraintKind) Relocatable() bool {
	switch k {
	case ConstraintUnique, ConstraintPrimaryKey, ConstraintForeignKey, ConstraintCheck:
		return true
	default:
		return false
	}
}

type ForeignKeyRef struct {
	Table    string
	Columns  []string
	OnDelete string
	OnUpdate string
}

func (r *ForeignKeyRef) fingerprint() uint64 {
	if r == nil {
		return 0
	}
	return utils.Fingerprint("fk:",
		utils.FingerprintStrings("", r.Table, r.OnDelete, r.OnUpdate),
		utils.FingerprintStrings("cols:", r.Columns...))
}

// ColumnConstraint is attached to a single column definition.
type ColumnConstraint struct {
	Kind       ConstraintKind
	References *ForeignKeyRef
	Check      string
	Default    Node
}

func (c *ColumnConstraint) Fingerprint() uint64 {
	return utils.Fingerprint("cc:"+strconv.Itoa(int(c.Kind)), utils.FingerprintString(c.Check), c.References.fingerprint(), fingerprintOf(c.Default))
}

// TableConstraint is a named constraint written after all columns.
type TableConstraint struct {
	Name       string
	Kind       ConstraintKind
	Columns    []string
	References *ForeignKeyRef
	Check      string
}

func (c *TableConstraint) Fingerprint() uint64 {
	return utils.Fingerprint("tc:"+strconv.Itoa(int(c.Kind)),
		utils.FingerprintStrings("", c.Name, c.Check),
		utils.FingerprintStrings("cols:", c.Columns...),
		c.References.fingerprint())
}

type ColumnDef struct {
	Name        string
	Type        *DataType
	Constraints []*ColumnConstraint
}

func (c *ColumnDef) Fingerprint() uint64 {
	parts := make([]uint64, 0, len(c.Constraints)+2)
	parts = append(parts, utils.FingerprintString(c.Name), c.Type.Fingerprint())
	for _, cc := range c.Constraints {
		parts = append(parts, cc.Fingerprint())
	}
	return utils.Fingerprint("coldef:", parts...)
}

type CreateTableStmt struct {
	Table       *Table
	Columns     []*ColumnDef
	Constraints []*TableConstraint
	IfNotExists bool
}

func (c *CreateTableStmt) Type() NodeType         { return NodeCreateTable }
func (c *CreateTableStmt) Accept(v Visitor) error { return v.VisitCreateTable(c) }
func (c *CreateTableStmt) Fingerprint() uint64 {
	parts := make([]uint64, 0, len(c.Columns)+len(c.Constraints)+2)
	if c.Table != nil {
		parts = append(parts, c.Table.Fingerprint())
	}
	for _, col := range c.Columns {
		parts = append(parts, col.Fingerprint())
	}
	parts = append(parts, ^uint64(0))
	for _, tc := range c.Constraints {
		parts = append(parts, tc.Fingerprint())
	}
	tag := "create:"
	if c.IfNotExists {
		tag += "ine"
	}
	return utils.Fingerprint(tag, parts...)
}
