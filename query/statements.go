package query

import (
	"github.com/Konsultn-Engineering/sqlb/ast"
	"github.com/Konsultn-Engineering/sqlb/schema"
)

// =========================================================================
// INSERT
// =========================================================================

// InsertInto writes one row; columns keep the order of the assignments.
func (b *Builder) InsertInto(table string, values ...Assignment) *Final {
	stmt := &ast.InsertStmt{Table: ast.NewTable("", table, "")}
	row := make([]ast.Node, len(values))
	for i, a := range values {
		stmt.Columns = append(stmt.Columns, a.Column)
		row[i] = a.node()
	}
	stmt.Values = [][]ast.Node{row}
	return &Final{buf: b.start(stmt)}
}

// InsertRows writes several rows into columns. Each row must match the
// column count.
func (b *Builder) InsertRows(table string, columns []string, rows ...[]any) *Final {
	stmt := &ast.InsertStmt{Table: ast.NewTable("", table, ""), Columns: columns}
	buf := b.start(stmt)
	for i, r := range rows {
		if len(r) != len(columns) {
			buf.fail(&RowShapeError{Row: i, Want: len(columns), Got: len(r)})
			break
		}
		row := make([]ast.Node, len(r))
		for j, v := range r {
			row[j] = operandNode(v)
		}
		stmt.Values = append(stmt.Values, row)
	}
	return &Final{buf: buf}
}

// =========================================================================
// UPDATE
// =========================================================================

func (b *Builder) Update(table string) *UpdateSet {
	stmt := &ast.UpdateStmt{Table: ast.NewTable("", table, "")}
	return &UpdateSet{buf: b.start(stmt), stmt: stmt}
}

// UpdateSet collects assignments. Build without Where updates every row.
type UpdateSet struct {
	buf  *Buffer
	stmt *ast.UpdateStmt
}

func (u *UpdateSet) Set(column string, value any) *UpdateSet {
	a := Set(column, value)
	u.stmt.Set = append(u.stmt.Set, ast.Assignment{Column: a.Column, Value: a.node()})
	return u
}

func (u *UpdateSet) Where(c Condition) *Final {
	u.buf.SetWhere(c)
	return &Final{buf: u.buf}
}

func (u *UpdateSet) Build() (string, error) {
	return u.buf.Build()
}

// =========================================================================
// DELETE
// =========================================================================

func (b *Builder) DeleteFrom(table string) *DeleteSource {
	stmt := &ast.DeleteStmt{Table: ast.NewTable("", table, "")}
	return &DeleteSource{buf: b.start(stmt)}
}

// DeleteSource deletes every row unless a WHERE condition follows. Like the
// select stages it shares its Buffer with what it returns, so do not branch it.
type DeleteSource struct {
	buf *Buffer
}

func (d *DeleteSource) Where(column string) *Operand[*DeleteFilter] {
	return newOperand(column, func(n ast.Node) *DeleteFilter {
		return d.WhereCondition(Condition{node: n})
	})
}

func (d *DeleteSource) WhereCondition(c Condition) *DeleteFilter {
	d.buf.SetWhere(c)
	return &DeleteFilter{buf: d.buf}
}

func (d *DeleteSource) Build() (string, error) {
	return d.buf.Build()
}

type DeleteFilter struct {
	buf *Buffer
}

func (f *DeleteFilter) And(c Condition) *DeleteFilter {
	f.buf.SetWhere(f.buf.where().And(c))
	return f
}

func (f *DeleteFilter) Or(c Condition) *DeleteFilter {
	f.buf.SetWhere(f.buf.where().Or(c))
	return f
}

// Limit caps the number of deleted rows.
func (f *DeleteFilter) Limit(n int) *DeleteFilter {
	f.buf.SetRowLimit(n)
	return f
}

func (f *DeleteFilter) Build() (string, error) {
	return f.buf.Build()
}

// =========================================================================
// DDL
// =========================================================================

// CreateTable defines a table from column descriptors, see the schema
// package. Stand-alone constraints are written after all columns.
func (b *Builder) CreateTable(name string, columns []*ast.ColumnDef, constraints ...*ast.TableConstraint) *Final {
	return &Final{buf: b.start(&ast.CreateTableStmt{
		Table:       ast.NewTable("", name, ""),
		Columns:     columns,
		Constraints: constraints,
	})}
}

// CreateTableIfNotExists is CreateTable with IF NOT EXISTS.
func (b *Builder) CreateTableIfNotExists(name string, columns []*ast.ColumnDef, constraints ...*ast.TableConstraint) *Final {
	return &Final{buf: b.start(&ast.CreateTableStmt{
		Table:       ast.NewTable("", name, ""),
		Columns:     columns,
		Constraints: constraints,
		IfNotExists: true,
	})}
}

// CreateTableFor derives the table from a tagged struct. Introspection
// errors are reported by Build.
func (b *Builder) CreateTableFor(model any, constraints ...*ast.TableConstraint) *Final {
	introspect := schema.Introspect
	if b.models != nil {
		introspect = b.models.Introspect
	}
	table, err := introspect(model)
	if err != nil {
		buf := b.start(&ast.CreateTableStmt{})
		buf.fail(err)
		return &Final{buf: buf}
	}
	return b.CreateTable(table.Name, table.Columns, constraints...)
}

func (b *Builder) AlterTable(name string) *AlterTable {
	return &AlterTable{b: b, table: ast.NewTable("", name, "")}
}

// AlterTable picks the single change an ALTER TABLE makes.
type AlterTable struct {
	b     *Builder
	table *ast.Table
}

func (a *AlterTable) AddColumn(col *ast.ColumnDef) *Final {
	return &Final{buf: a.b.start(&ast.AlterTableStmt{Table: a.table, Action: ast.AlterAddColumn, Column: col})}
}

// ModifyColumn changes the type of col; the keyword depends on the dialect.
func (a *AlterTable) ModifyColumn(col *ast.ColumnDef) *Final {
	return &Final{buf: a.b.start(&ast.AlterTableStmt{Table: a.table, Action: ast.AlterModifyColumn, Column: col})}
}

func (a *AlterTable) DropColumn(name string) *Final {
	return &Final{buf: a.b.start(&ast.AlterTableStmt{Table: a.table, Action: ast.AlterDropColumn, ColumnName: name})}
}

func (b *Builder) DropTable(name string) *Final {
	return &Final{buf: b.start(&ast.DropTableStmt{Table: ast.NewTable("", name, "")})}
}

func (b *Builder) CreateDatabase(name string) *Final {
	return &Final{buf: b.start(&ast.CreateDatabaseStmt{Name: name})}
}

func (b *Builder) DropDatabase(name string) *Final {
	return &Final{buf: b.start(&ast.DropDatabaseStmt{Name: name})}
}
