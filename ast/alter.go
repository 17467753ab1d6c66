package ast

import (
	"strconv"

	"github.com/Konsultn-Engineering/sqlb/utils"
)

type AlterAction int

const (
	AlterAddColumn AlterAction = iota
	AlterModifyColumn
	AlterDropColumn
)

type AlterTableStmt struct {
	Table  *Table
	Action AlterAction
	// Column is set for add and modify.
	Column *ColumnDef
	// ColumnName is set for drop.
	ColumnName string
}

func (a *AlterTableStmt) Type() NodeType         { return NodeAlterTable }
func (a *AlterTableStmt) Accept(v Visitor) error { return v.VisitAlterTable(a) }
func (a *AlterTableStmt) Fingerprint() uint64 {
	var table, col uint64
	if a.Table != nil {
		table = a.Table.Fingerprint()
	}
	if a.Column != nil {
		col = a.Column.Fingerprint()
	}
	return utils.Fingerprint("alter:"+strconv.Itoa(int(a.Action)), utils.FingerprintString(a.ColumnName), table, col)
}

type DropTableStmt struct {
	Table *Table
}

func (d *DropTableStmt) Type() NodeType         { return NodeDropTable }
func (d *DropTableStmt) Accept(v Visitor) error { return v.VisitDropTable(d) }
func (d *DropTableStmt) Fingerprint() uint64 {
	var table uint64
	if d.Table != nil {
		table = d.Table.Fingerprint()
	}
	return utils.Fingerprint("droptable:", table)
}

type CreateDatabaseStmt struct {
	Name string
}

func (c *CreateDatabaseStmt) Type() NodeType         { return NodeCreateDatabase }
func (c *CreateDatabaseStmt) Accept(v Visitor) error { return v.VisitCreateDatabase(c) }
func (c *CreateDatabaseStmt) Fingerprint() uint64 {
	return utils.FingerprintString("createdb:" + c.Name)
}

type DropDatabaseStmt struct {
	Name string
}

func (d *DropDatabaseStmt) Type() NodeType         { return NodeDropDatabase }
func (d *DropDatabaseStmt) Accept(v Visitor) error { return v.VisitDropDatabase(d) }
func (d *DropDatabaseStmt) Fingerprint() uint64 {
	return utils.FingerprintString("dropdb:" + d.Name)
}
