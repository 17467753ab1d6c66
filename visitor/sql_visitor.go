package visitor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Konsultn-Engineering/sqlb/ast"
	"github.com/Konsultn-Engineering/sqlb/dialect"
	"github.com/Konsultn-Engineering/sqlb/utils"
)

var (
	ErrRowLimitWithoutWhere = errors.New("visitor: ROWNUM row limit requires a WHERE condition")
	ErrRowLimitUnsupported  = errors.New("visitor: row limit is not supported for this statement")
	ErrNilCondition         = errors.New("visitor: nil condition")
	ErrNilStatement         = errors.New("visitor: nil statement")
)

var visitorPool = sync.Pool{
	New: func() any {
		return &SQLVisitor{}
	},
}

// SQLVisitor renders a statement tree to SQL text for one dialect.
// It is not safe for concurrent use; take one per build.
type SQLVisitor struct {
	sb      strings.Builder
	dialect dialect.Dialect
}

func NewSQLVisitor(d dialect.Dialect) *SQLVisitor {
	v := visitorPool.Get().(*SQLVisitor)
	v.dialect = d
	v.sb.Reset()
	return v
}

func (v *SQLVisitor) Release() {
	v.dialect = nil
	v.sb.Reset()
	visitorPool.Put(v)
}

func (v *SQLVisitor) Reset() {
	v.sb.Reset()
}

// Build renders root. The tree is only read, so building twice yields the same text.
func (v *SQLVisitor) Build(root ast.Node) (string, error) {
	if root == nil {
		return "", ErrNilStatement
	}
	v.sb.Reset()
	if err := root.Accept(v); err != nil {
		return "", err
	}
	return strings.TrimSpace(v.sb.String()), nil
}

// Render is a one-shot Build with a pooled visitor.
func Render(root ast.Node, d dialect.Dialect) (string, error) {
	v := NewSQLVisitor(d)
	defer v.Release()
	return v.Build(root)
}

func (v *SQLVisitor) VisitSelect(s *ast.SelectStmt) error {
	//	SELECT [DISTINCT] [TOP n] column_list
	//	FROM table [JOIN ...]
	//	[WHERE condition]
	//	[GROUP BY column_list]
	//	[HAVING condition]
	//	[UNION [ALL] SELECT ...]
	//	[ORDER BY column_list]
	//	[LIMIT n]
	var where ast.Node
	if s.Where != nil {
		if s.Where.Condition == nil {
			return ErrNilCondition
		}
		where = s.Where.Condition
	}

	trailing := false
	top := ""
	if s.Limit != nil {
		switch v.dialect.RowLimit() {
		case dialect.LimitTrailing:
			trailing = true
		case dialect.LimitTop:
			top = utils.Str("TOP {} ", s.Limit.Count)
		case dialect.LimitRownum:
			if where == nil {
				return ErrRowLimitWithoutWhere
			}
			where = ast.And(where, rownum(s.Limit.Count))
		default:
			return fmt.Errorf("%w: SELECT in %s", ErrRowLimitUnsupported, v.dialect.Kind())
		}
	}

	v.sb.WriteString("SELECT ")
	if s.Distinct {
		v.sb.WriteString("DISTINCT ")
	}
	v.sb.WriteString(top)

	if err := v.writeList(s.Columns); err != nil {
		return err
	}

	if s.From != nil {
		v.sb.WriteString(" FROM ")
		if err := s.From.Accept(v); err != nil {
			return err
		}
	}

	for _, join := range s.Joins {
		if err := join.Accept(v); err != nil {
			return err
		}
	}

	if err := v.writeCondition(" WHERE ", where); err != nil {
		return err
	}

	if s.GroupBy != nil {
		if err := s.GroupBy.Accept(v); err != nil {
			return err
		}
	}

	if s.Having != nil {
		if s.Having.Condition == nil {
			return ErrNilCondition
		}
		if err := v.writeCondition(" HAVING ", s.Having.Condition); err != nil {
			return err
		}
	}

	for _, u := range s.Unions {
		if err := u.Accept(v); err != nil {
			return err
		}
	}

	for i, o := range s.OrderBy {
		if i == 0 {
			v.sb.WriteString(" ORDER BY ")
		} else {
			v.sb.WriteString(", ")
		}
		if err := o.Accept(v); err != nil {
			return err
		}
	}

	if trailing {
		return s.Limit.Accept(v)
	}
	return nil
}

func (v *SQLVisitor) VisitInsert(stmt *ast.InsertStmt) error {
	v.sb.WriteString("INSERT INTO ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}
	if len(stmt.Columns) > 0 {
		v.sb.WriteByte(' ')
		v.sb.WriteString(utils.Enclose(utils.Join(stmt.Columns, ", "), utils.Parentheses))
	}
	v.sb.WriteString(" VALUES ")
	for i, row := range stmt.Values {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteByte('(')
		if err := v.writeList(row); err != nil {
			return err
		}
		v.sb.WriteByte(')')
	}
	return nil
}

func (v *SQLVisitor) VisitUpdate(stmt *ast.UpdateStmt) error {
	v.sb.WriteString("UPDATE ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}
	v.sb.WriteString(" SET ")
	for i, a := range stmt.Set {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteString(a.Column)
		v.sb.WriteString(" = ")
		if a.Value == nil {
			v.sb.WriteString("NULL")
			continue
		}
		if err := a.Value.Accept(v); err != nil {
			return err
		}
	}
	if stmt.Where != nil {
		if stmt.Where.Condition == nil {
			return ErrNilCondition
		}
		return v.writeCondition(" WHERE ", stmt.Where.Condition)
	}
	return nil
}

func (v *SQLVisitor) VisitDelete(stmt *ast.DeleteStmt) error {
	var where ast.Node
	if stmt.Where != nil {
		if stmt.Where.Condition == nil {
			return ErrNilCondition
		}
		where = stmt.Where.Condition
	}

	v.sb.WriteString("DELETE ")
	trailing := false
	if stmt.Limit != nil {
		switch v.dialect.DeleteLimit() {
		case dialect.LimitTrailing:
			trailing = true
		case dialect.LimitTop:
			v.sb.WriteString(utils.Str("TOP ({}) ", stmt.Limit.Count))
		case dialect.LimitRownum:
			if where == nil {
				return ErrRowLimitWithoutWhere
			}
			where = ast.And(where, rownum(stmt.Limit.Count))
		default:
			return fmt.Errorf("%w: DELETE in %s", ErrRowLimitUnsupported, v.dialect.Kind())
		}
	}

	v.sb.WriteString("FROM ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}
	if err := v.writeCondition(" WHERE ", where); err != nil {
		return err
	}
	if trailing {
		return stmt.Limit.Accept(v)
	}
	return nil
}

func (v *SQLVisitor) VisitColumn(c *ast.Column) error {
	if c.Table != "" {
		v.sb.WriteString(c.Table)
		v.sb.WriteByte('.')
	}
	v.sb.WriteString(c.Name)

	if c.Alias != "" && c.Alias != c.Name {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(c.Alias)
	}

	return nil
}

func (v *SQLVisitor) VisitTable(t *ast.Table) error {
	if t.Schema != "" {
		v.sb.WriteString(t.Schema)
		v.sb.WriteByte('.')
	}
	v.sb.WriteString(t.Name)

	if t.Alias != "" && t.Alias != t.Name {
		v.sb.WriteByte(' ')
		v.sb.WriteString(t.Alias)
	}

	return nil
}

func (v *SQLVisitor) VisitValue(val *ast.Value) error {
	v.sb.WriteString(v.dialect.RenderValue(val.Val))
	return nil
}

func (v *SQLVisitor) VisitRaw(r *ast.Raw) error {
	v.sb.WriteString(r.SQL)
	return nil
}

func (v *SQLVisitor) VisitArray(a *ast.Array) error {
	v.sb.WriteByte('(')
	for i, val := range a.Values {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if val == nil {
			return ErrNilCondition
		}
		if err := val.Accept(v); err != nil {
			return err
		}
	}
	v.sb.WriteByte(')')
	return nil
}

func (v *SQLVisitor) VisitRange(r *ast.Range) error {
	if r.Low == nil || r.High == nil {
		return ErrNilCondition
	}
	if err := r.Low.Accept(v); err != nil {
		return err
	}
	v.sb.WriteString(" AND ")
	return r.High.Accept(v)
}

func (v *SQLVisitor) VisitFunction(f *ast.Function) error {
	v.sb.WriteString(f.Name)
	v.sb.WriteByte('(')
	if err := v.writeList(f.Args); err != nil {
		return err
	}
	v.sb.WriteByte(')')
	if f.Alias != "" {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(f.Alias)
	}
	return nil
}

func (v *SQLVisitor) VisitGroupedExpr(g *ast.GroupedExpr) error {
	if g.Expr == nil {
		return ErrNilCondition
	}
	v.sb.WriteByte('(')
	err := g.Expr.Accept(v)
	v.sb.WriteByte(')')
	return err
}

func (v *SQLVisitor) VisitBinaryExpr(expr *ast.BinaryExpr) error {
	if expr.Left == nil || expr.Right == nil {
		return ErrNilCondition
	}

	logical := expr.Operator == ast.OpAnd || expr.Operator == ast.OpOr

	if err := v.writeOperand(expr.Left, logical); err != nil {
		return err
	}

	v.sb.WriteByte(' ')
	v.sb.WriteString(expr.Operator)
	v.sb.WriteByte(' ')

	return v.writeOperand(expr.Right, logical)
}

func (v *SQLVisitor) VisitUnaryExpr(expr *ast.UnaryExpr) error {
	if expr.Operand == nil {
		return ErrNilCondition
	}

	if expr.IsPrefix {
		v.sb.WriteString(expr.Operator)
		v.sb.WriteByte(' ')
		return v.writeOperand(expr.Operand, expr.Operator == ast.OpNot)
	}

	if err := expr.Operand.Accept(v); err != nil {
		return err
	}
	v.sb.WriteByte(' ')
	v.sb.WriteString(expr.Operator)
	return nil
}

func (v *SQLVisitor) VisitSubqueryExpr(s *ast.SubqueryExpr) error {
	if s.Stmt == nil {
		return ErrNilStatement
	}
	v.sb.WriteByte('(')
	err := s.Stmt.Accept(v)
	v.sb.WriteByte(')')
	return err
}

// VisitLikePattern spells each wildcard the way the dialect expects and quotes the result.
func (v *SQLVisitor) VisitLikePattern(p *ast.LikePattern) error {
	var pattern strings.Builder
	for _, part := range p.Parts {
		switch part.Wildcard {
		case ast.AnyChar:
			pattern.WriteString(v.dialect.AnyChar())
		case ast.AnyString:
			pattern.WriteString(v.dialect.AnyString())
		default:
			pattern.WriteString(part.Text)
		}
	}
	v.sb.WriteString(v.dialect.RenderValue(pattern.String()))
	return nil
}

func (v *SQLVisitor) VisitWhereClause(clause *ast.WhereClause) error {
	if clause == nil {
		return nil
	}
	if clause.Condition == nil {
		return ErrNilCondition
	}
	return v.writeCondition(" WHERE ", clause.Condition)
}

func (v *SQLVisitor) VisitJoinClause(clause *ast.JoinClause) error {
	if clause == nil || clause.Table == nil {
		return nil
	}

	v.sb.WriteByte(' ')
	v.sb.WriteString(clause.JoinType.Keyword())
	v.sb.WriteByte(' ')
	if err := clause.Table.Accept(v); err != nil {
		return err
	}

	return v.writeCondition(" ON ", clause.On)
}

func (v *SQLVisitor) VisitGroupBy(g *ast.GroupByClause) error {
	if len(g.Exprs) == 0 {
		return nil
	}
	v.sb.WriteString(" GROUP BY ")
	return v.writeList(g.Exprs)
}

// VisitOrderByClause writes one sort key. The caller writes "ORDER BY" and separators.
func (v *SQLVisitor) VisitOrderByClause(clause *ast.OrderByClause) error {
	if clause.Expr == nil {
		return ErrNilCondition
	}
	if err := clause.Expr.Accept(v); err != nil {
		return err
	}
	switch clause.Dir {
	case ast.OrderAsc:
		v.sb.WriteString(" ASC")
	case ast.OrderDesc:
		v.sb.WriteString(" DESC")
	}
	return nil
}

// VisitLimitClause writes the trailing form. TOP and ROWNUM are resolved by the statement.
func (v *SQLVisitor) VisitLimitClause(clause *ast.LimitClause) error {
	v.sb.WriteString(" LIMIT ")
	v.sb.WriteString(strconv.Itoa(clause.Count))
	return nil
}

func (v *SQLVisitor) VisitUnionClause(u *ast.UnionClause) error {
	if u.Select == nil {
		return ErrNilStatement
	}
	if u.All {
		v.sb.WriteString(" UNION ALL ")
	} else {
		v.sb.WriteString(" UNION ")
	}
	return u.Select.Accept(v)
}

// --- helpers ---

func rownum(n int) ast.Node {
	return ast.NewBinaryExpr(ast.NewColumn("", "ROWNUM", ""), ast.OpLessThanOrEqual, ast.NewValue(n))
}

// writeOperand wraps composite operands of a logical operator in parentheses.
func (v *SQLVisitor) writeOperand(n ast.Node, logical bool) error {
	if logical && ast.IsComposite(n) {
		v.sb.WriteByte('(')
		err := n.Accept(v)
		v.sb.WriteByte(')')
		return err
	}
	return n.Accept(v)
}

func (v *SQLVisitor) writeCondition(keyword string, cond ast.Node) error {
	if cond == nil {
		return nil
	}
	v.sb.WriteString(keyword)
	return cond.Accept(v)
}

func (v *SQLVisitor) writeList(nodes []ast.Node) error {
	for i, n := range nodes {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if n == nil {
			return ErrNilCondition
		}
		if err := n.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
