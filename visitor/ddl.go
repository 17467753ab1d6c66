package visitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Konsultn-Engineering/sqlb/ast"
	"github.com/Konsultn-Engineering/sqlb/dialect"
	"github.com/Konsultn-Engineering/sqlb/utils"
)

// relocated is a column constraint moved behind the column list.
type relocated struct {
	column     string
	constraint *ast.ColumnConstraint
}

func (v *SQLVisitor) VisitCreateTable(stmt *ast.CreateTableStmt) error {
	if stmt.Table == nil {
		return fmt.Errorf("visitor: CREATE TABLE without a table")
	}

	v.sb.WriteString("CREATE TABLE ")
	if stmt.IfNotExists {
		v.sb.WriteString("IF NOT EXISTS ")
	}
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}
	v.sb.WriteString(" (")

	placement := v.dialect.ConstraintPlacement()
	var moved []relocated

	for i, col := range stmt.Columns {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		m, err := v.writeColumnDef(col, placement)
		if err != nil {
			return err
		}
		moved = append(moved, m...)
	}

	for _, r := range moved {
		v.sb.WriteString(", ")
		if err := v.writeTrailingConstraint(r); err != nil {
			return err
		}
	}

	wrote := len(stmt.Columns) > 0
	for i, tc := range stmt.Constraints {
		if wrote || i > 0 {
			v.sb.WriteString(", ")
		}
		if err := v.writeTableConstraint(tc); err != nil {
			return err
		}
	}

	v.sb.WriteByte(')')
	return nil
}

func (v *SQLVisitor) VisitAlterTable(stmt *ast.AlterTableStmt) error {
	v.sb.WriteString("ALTER TABLE ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}

	switch stmt.Action {
	case ast.AlterAddColumn:
		if stmt.Column == nil {
			return fmt.Errorf("visitor: ALTER TABLE ADD without a column")
		}
		v.sb.WriteString(" ADD ")
		_, err := v.writeColumnDef(stmt.Column, dialect.PlaceInline)
		return err
	case ast.AlterModifyColumn:
		if stmt.Column == nil {
			return fmt.Errorf("visitor: ALTER TABLE MODIFY without a column")
		}
		// render the definition on its own to split name from type
		def := NewSQLVisitor(v.dialect)
		defer def.Release()
		if _, err := def.writeColumnDef(&ast.ColumnDef{Type: stmt.Column.Type, Constraints: stmt.Column.Constraints}, dialect.PlaceInline); err != nil {
			return err
		}
		v.sb.WriteByte(' ')
		v.sb.WriteString(v.dialect.ModifyColumn(stmt.Column.Name, strings.TrimSpace(def.sb.String())))
		return nil
	case ast.AlterDropColumn:
		v.sb.WriteString(" DROP COLUMN ")
		v.sb.WriteString(stmt.ColumnName)
		return nil
	default:
		return fmt.Errorf("visitor: unknown ALTER TABLE action %d", stmt.Action)
	}
}

func (v *SQLVisitor) VisitDropTable(stmt *ast.DropTableStmt) error {
	v.sb.WriteString("DROP TABLE ")
	return stmt.Table.Accept(v)
}

func (v *SQLVisitor) VisitCreateDatabase(stmt *ast.CreateDatabaseStmt) error {
	v.sb.WriteString("CREATE DATABASE ")
	v.sb.WriteString(stmt.Name)
	return nil
}

func (v *SQLVisitor) VisitDropDatabase(stmt *ast.DropDatabaseStmt) error {
	v.sb.WriteString("DROP DATABASE ")
	v.sb.WriteString(stmt.Name)
	return nil
}

// writeColumnDef writes "name TYPE constraints..." and returns the constraints
// the placement strategy moved out of the column.
func (v *SQLVisitor) writeColumnDef(col *ast.ColumnDef, placement dialect.Placement) ([]relocated, error) {
	v.sb.WriteString(col.Name)
	if col.Type != nil {
		if col.Name != "" {
			v.sb.WriteByte(' ')
		}
		v.sb.WriteString(DataTypeSQL(col.Type))
	}

	var moved []relocated
	for _, c := range col.Constraints {
		if c == nil {
			continue
		}
		if placement == dialect.PlaceTrailing && c.Kind.Relocatable() {
			moved = append(moved, relocated{column: col.Name, constraint: c})
			continue
		}
		v.sb.WriteByte(' ')
		if err := v.writeInlineConstraint(c); err != nil {
			return nil, err
		}
	}
	return moved, nil
}

func (v *SQLVisitor) writeInlineConstraint(c *ast.ColumnConstraint) error {
	switch c.Kind {
	case ast.ConstraintNotNull:
		v.sb.WriteString("NOT NULL")
	case ast.ConstraintUnique:
		v.sb.WriteString("UNIQUE")
	case ast.ConstraintPrimaryKey:
		v.sb.WriteString("PRIMARY KEY")
	case ast.ConstraintForeignKey:
		v.sb.WriteString("FOREIGN KEY ")
		return v.writeReferences(c.References)
	case ast.ConstraintCheck:
		v.sb.WriteString("CHECK ")
		v.sb.WriteString(utils.Enclose(c.Check, utils.Parentheses))
	case ast.ConstraintDefault:
		v.sb.WriteString("DEFAULT ")
		if c.Default == nil {
			v.sb.WriteString("NULL")
			return nil
		}
		return c.Default.Accept(v)
	case ast.ConstraintIdentity:
		v.sb.WriteString(v.dialect.IdentityClause())
	default:
		return fmt.Errorf("visitor: unknown constraint kind %d", c.Kind)
	}
	return nil
}

func (v *SQLVisitor) writeTrailingConstraint(r relocated) error {
	return v.writeKeyedConstraint(r.constraint.Kind, []string{r.column}, r.constraint.References, r.constraint.Check)
}

func (v *SQLVisitor) writeTableConstraint(tc *ast.TableConstraint) error {
	if tc.Name != "" {
		v.sb.WriteString("CONSTRAINT ")
		v.sb.WriteString(tc.Name)
		v.sb.WriteByte(' ')
	}
	return v.writeKeyedConstraint(tc.Kind, tc.Columns, tc.References, tc.Check)
}

// writeKeyedConstraint writes the column list form, e.g. "PRIMARY KEY (ID, LastName)".
func (v *SQLVisitor) writeKeyedConstraint(kind ast.ConstraintKind, columns []string, ref *ast.ForeignKeyRef, check string) error {
	cols := utils.Enclose(utils.Join(columns, ", "), utils.Parentheses)
	switch kind {
	case ast.ConstraintUnique:
		v.sb.WriteString("UNIQUE ")
		v.sb.WriteString(cols)
	case ast.ConstraintPrimaryKey:
		v.sb.WriteString("PRIMARY KEY ")
		v.sb.WriteString(cols)
	case ast.ConstraintForeignKey:
		v.sb.WriteString("FOREIGN KEY ")
		v.sb.WriteString(cols)
		v.sb.WriteByte(' ')
		return v.writeReferences(ref)
	case ast.ConstraintCheck:
		v.sb.WriteString("CHECK ")
		v.sb.WriteString(utils.Enclose(check, utils.Parentheses))
	default:
		return fmt.Errorf("visitor: constraint kind %d cannot stand alone", kind)
	}
	return nil
}

func (v *SQLVisitor) writeReferences(ref *ast.ForeignKeyRef) error {
	if ref == nil {
		return fmt.Errorf("visitor: FOREIGN KEY without a referenced table")
	}
	v.sb.WriteString("REFERENCES ")
	v.sb.WriteString(ref.Table)
	v.sb.WriteString(utils.Enclose(utils.Join(ref.Columns, ", "), utils.Parentheses))
	if ref.OnDelete != "" {
		v.sb.WriteString(" ON DELETE ")
		v.sb.WriteString(ref.OnDelete)
	}
	if ref.OnUpdate != "" {
		v.sb.WriteString(" ON UPDATE ")
		v.sb.WriteString(ref.OnUpdate)
	}
	return nil
}

// DataTypeSQL renders a type: VARCHAR(255), DECIMAL(9,3), ENUM('X','Y') or a bare DATE.
func DataTypeSQL(d *ast.DataType) string {
	if len(d.Enum) > 0 {
		values := make([]string, len(d.Enum))
		for i, e := range d.Enum {
			values[i] = strings.ReplaceAll(e, "'", "''")
		}
		return d.Name + utils.Enclose(utils.JoinEnclosed(values, ",", utils.Single), utils.Parentheses)
	}
	if len(d.Args) == 0 {
		return d.Name
	}
	args := make([]string, len(d.Args))
	for i, a := range d.Args {
		args[i] = strconv.Itoa(a)
	}
	return d.Name + utils.Enclose(strings.Join(args, ","), utils.Parentheses)
}
