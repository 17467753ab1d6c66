package query

import (
	"github.com/Konsultn-Engineering/sqlb/ast"
)

type JoinType = ast.JoinType

const (
	InnerJoin = ast.JoinInner
	LeftJoin  = ast.JoinLeft
	RightJoin = ast.JoinRight
	FullJoin  = ast.JoinFull
)

// Selection is any SELECT stage that already names its table. It can be
// appended to another SELECT with Union or UnionAll.
type Selection interface {
	selection() *ast.SelectStmt
}

func (b *Builder) selectStmt(distinct bool, limit int, columns []ast.Node) *SelectFrom {
	stmt := &ast.SelectStmt{Distinct: distinct, Columns: columns}
	if limit > 0 {
		b.rowLimit = limit
	}
	return &SelectFrom{buf: b.start(stmt), stmt: stmt}
}

// Select lists the columns verbatim: Select("CustomerName", Count("CustomerID")).
func (b *Builder) Select(columns ...string) *SelectFrom {
	return b.selectStmt(false, 0, ast.Columns(columns...))
}

func (b *Builder) SelectDistinct(columns ...string) *SelectFrom {
	return b.selectStmt(true, 0, ast.Columns(columns...))
}

// SelectAll selects *.
func (b *Builder) SelectAll() *SelectFrom {
	return b.selectStmt(false, 0, ast.AllColumns())
}

func (b *Builder) SelectDistinctAll() *SelectFrom {
	return b.selectStmt(true, 0, ast.AllColumns())
}

// SelectLimit is Select with a row limit of n.
func (b *Builder) SelectLimit(n int, columns ...string) *SelectFrom {
	return b.selectStmt(false, n, ast.Columns(columns...))
}

func (b *Builder) SelectDistinctLimit(n int, columns ...string) *SelectFrom {
	return b.selectStmt(true, n, ast.Columns(columns...))
}

func (b *Builder) SelectAllLimit(n int) *SelectFrom {
	return b.selectStmt(false, n, ast.AllColumns())
}

func (b *Builder) SelectDistinctAllLimit(n int) *SelectFrom {
	return b.selectStmt(true, n, ast.AllColumns())
}

// SelectFrom waits for the table.
type SelectFrom struct {
	buf  *Buffer
	stmt *ast.SelectStmt
}

func (s *SelectFrom) From(table string) *SelectSource {
	s.stmt.From = ast.NewTable("", table, "")
	return &SelectSource{SelectTail{buf: s.buf, stmt: s.stmt}}
}

// FromJoin joins two tables on a column both share:
// "FROM left INNER JOIN right ON left.column = right.column".
func (s *SelectFrom) FromJoin(left string, join JoinType, right, column string) *SelectSource {
	src := s.From(left)
	return src.Join(join, right, column)
}

// SelectSource can take a WHERE condition or go straight to the tail clauses.
//
// Every stage of one chain writes to the same Buffer, so a stage is not a
// snapshot: calling Where twice on the same SelectSource leaves only the last
// condition, and both returned filters build it. Start a new chain from the
// Builder for each statement.
type SelectSource struct {
	SelectTail
}

// Join adds another table, matched on column against the FROM table.
func (s *SelectSource) Join(join JoinType, table, column string) *SelectSource {
	s.stmt.Joins = append(s.stmt.Joins,
		ast.NewJoinClause(join, ast.NewTable("", table, ""), ast.JoinOn(s.stmt.From.Name, table, column)))
	return s
}

// JoinOn adds a table with an explicit ON condition.
func (s *SelectSource) JoinOn(join JoinType, table string, on Condition) *SelectSource {
	s.stmt.Joins = append(s.stmt.Joins, ast.NewJoinClause(join, ast.NewTable("", table, ""), on.node))
	return s
}

func (s *SelectSource) Where(column string) *Operand[*SelectFilter] {
	return newOperand(column, func(n ast.Node) *SelectFilter {
		return s.WhereCondition(Condition{node: n})
	})
}

func (s *SelectSource) WhereCondition(c Condition) *SelectFilter {
	s.buf.SetWhere(c)
	return &SelectFilter{SelectTail{buf: s.buf, stmt: s.stmt}}
}

// SelectFilter extends the WHERE condition or moves on to the tail clauses.
type SelectFilter struct {
	SelectTail
}

func (f *SelectFilter) And(c Condition) *SelectFilter {
	f.buf.SetWhere(f.buf.where().And(c))
	return f
}

func (f *SelectFilter) Or(c Condition) *SelectFilter {
	f.buf.SetWhere(f.buf.where().Or(c))
	return f
}

// SelectTail holds the clauses after WHERE. Their order in the output is
// fixed: GROUP BY, HAVING, UNION, ORDER BY, whatever order they are called in.
type SelectTail struct {
	buf  *Buffer
	stmt *ast.SelectStmt
}

func (t *SelectTail) selection() *ast.SelectStmt {
	return t.stmt
}

func (t *SelectTail) GroupBy(columns ...string) *SelectTail {
	if t.stmt.GroupBy == nil {
		t.stmt.GroupBy = &ast.GroupByClause{}
	}
	t.stmt.GroupBy.Exprs = append(t.stmt.GroupBy.Exprs, ast.Columns(columns...)...)
	return t
}

func (t *SelectTail) Having(c Condition) *SelectTail {
	t.stmt.Having = ast.NewWhereClause(c.node)
	return t
}

// OrderBy sorts without a direction keyword, leaving the database default.
func (t *SelectTail) OrderBy(columns ...string) *SelectTail {
	return t.orderBy(ast.OrderDefault, columns)
}

func (t *SelectTail) OrderByAsc(columns ...string) *SelectTail {
	return t.orderBy(ast.OrderAsc, columns)
}

func (t *SelectTail) OrderByDesc(columns ...string) *SelectTail {
	return t.orderBy(ast.OrderDesc, columns)
}

func (t *SelectTail) orderBy(dir ast.OrderDir, columns []string) *SelectTail {
	for _, c := range columns {
		t.stmt.OrderBy = append(t.stmt.OrderBy, ast.OrderBy(c, dir))
	}
	return t
}

// Union appends other; it is rendered in this statement's dialect.
// Row limits set on other are not carried over.
func (t *SelectTail) Union(other Selection) *SelectTail {
	return t.union(false, other)
}

func (t *SelectTail) UnionAll(other Selection) *SelectTail {
	return t.union(true, other)
}

func (t *SelectTail) union(all bool, other Selection) *SelectTail {
	var sel *ast.SelectStmt
	if other != nil {
		sel = other.selection()
	}
	t.stmt.Unions = append(t.stmt.Unions, &ast.UnionClause{All: all, Select: sel})
	return t
}

// Limit sets the row limit; it replaces one given to SelectLimit or LimitOutputRows.
func (t *SelectTail) Limit(n int) *SelectTail {
	t.buf.SetRowLimit(n)
	return t
}

func (t *SelectTail) Build() (string, error) {
	return t.buf.Build()
}

func (t *SelectTail) Buffer() *Buffer {
	return t.buf
}
