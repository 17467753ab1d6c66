// Package schema builds table, column, type and constraint descriptors for
// CREATE TABLE and ALTER TABLE, either by hand or from tagged Go structs.
package schema

import (
	"github.com/Konsultn-Engineering/sqlb/ast"
)

// Column describes one column. Constraints keep the order they are given in.
func Column(name string, t *ast.DataType, constraints ...*ast.ColumnConstraint) *ast.ColumnDef {
	return &ast.ColumnDef{Name: name, Type: t, Constraints: constraints}
}

// =========================================================================
// Column constraints
// =========================================================================

func NotNull() *ast.ColumnConstraint {
	return &ast.ColumnConstraint{Kind: ast.ConstraintNotNull}
}

func Unique() *ast.ColumnConstraint {
	return &ast.ColumnConstraint{Kind: ast.ConstraintUnique}
}

func PrimaryKey() *ast.ColumnConstraint {
	return &ast.ColumnConstraint{Kind: ast.ConstraintPrimaryKey}
}

// ForeignKey references table(column).
func ForeignKey(table, column string) *ast.ColumnConstraint {
	return &ast.ColumnConstraint{
		Kind:       ast.ConstraintForeignKey,
		References: &ast.ForeignKeyRef{Table: table, Columns: []string{column}},
	}
}

// Check takes the predicate verbatim, e.g. "Age>=18".
func Check(expr string) *ast.ColumnConstraint {
	return &ast.ColumnConstraint{Kind: ast.ConstraintCheck, Check: expr}
}

// Default renders v as a literal of the target dialect: numbers bare, strings quoted.
func Default(v any) *ast.ColumnConstraint {
	return &ast.ColumnConstraint{Kind: ast.ConstraintDefault, Default: ast.NewValue(v)}
}

// DefaultExpr writes expr unquoted, for things like CURRENT_TIMESTAMP.
func DefaultExpr(expr string) *ast.ColumnConstraint {
	return &ast.ColumnConstraint{Kind: ast.ConstraintDefault, Default: ast.NewRaw(expr)}
}

// Identity marks an auto generated key. Each dialect has its own spelling.
func Identity() *ast.ColumnConstraint {
	return &ast.ColumnConstraint{Kind: ast.ConstraintIdentity}
}

// =========================================================================
// Table constraints
// =========================================================================

func UniqueConstraint(name string, columns ...string) *ast.TableConstraint {
	return &ast.TableConstraint{Name: name, Kind: ast.ConstraintUnique, Columns: columns}
}

func PrimaryKeyConstraint(name string, columns ...string) *ast.TableConstraint {
	return &ast.TableConstraint{Name: name, Kind: ast.ConstraintPrimaryKey, Columns: columns}
}

func ForeignKeyConstraint(name string, columns []string, refTable string, refColumns ...string) *ast.TableConstraint {
	return &ast.TableConstraint{
		Name:       name,
		Kind:       ast.ConstraintForeignKey,
		Columns:    columns,
		References: &ast.ForeignKeyRef{Table: refTable, Columns: refColumns},
	}
}

func CheckConstraint(name, expr string) *ast.TableConstraint {
	return &ast.TableConstraint{Name: name, Kind: ast.ConstraintCheck, Check: expr}
}
