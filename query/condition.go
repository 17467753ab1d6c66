package query

import (
	"github.com/Konsultn-Engineering/sqlb/ast"
	"github.com/Konsultn-Engineering/sqlb/dialect"
	"github.com/Konsultn-Engineering/sqlb/visitor"
)

// Condition is an immutable WHERE or HAVING predicate. Combining two
// conditions returns a new one and leaves both operands untouched, so a
// condition can be reused in several statements.
//
// The zero Condition holds no predicate; building a statement that uses it
// fails with visitor.ErrNilCondition.
type Condition struct {
	node ast.Node
}

// Node exposes the underlying tree.
func (c Condition) Node() ast.Node {
	return c.node
}

func (c Condition) And(other Condition) Condition {
	return Condition{node: ast.And(c.node, other.node)}
}

func (c Condition) Or(other Condition) Condition {
	return Condition{node: ast.Or(c.node, other.node)}
}

// IsComposite is true for AND, OR and NOT combinations.
func (c Condition) IsComposite() bool {
	return ast.IsComposite(c.node)
}

// Render writes the condition in the given dialect.
func (c Condition) Render(kind dialect.Kind) (string, error) {
	d, err := dialect.For(kind)
	if err != nil {
		return "", err
	}
	if c.node == nil {
		return "", visitor.ErrNilCondition
	}
	return visitor.Render(c.node, d)
}

// String renders with the default dialect. Invalid conditions render as "".
func (c Condition) String() string {
	s, err := c.Render(dialect.Default)
	if err != nil {
		return ""
	}
	return s
}

func Not(c Condition) Condition {
	return Condition{node: ast.Not(c.node)}
}

// Exists wraps an already built statement: EXISTS (sql).
func Exists(sql string) Condition {
	return Condition{node: ast.Exists(ast.NewRaw(sql))}
}

func NotExists(sql string) Condition {
	return Condition{node: ast.NotExists(ast.NewRaw(sql))}
}

// Expr is an operand that is written without quoting.
type Expr struct {
	node ast.Node
}

// Ident marks a column reference such as "Suppliers.SupplierID" so it is
// compared as an identifier instead of a quoted string.
func Ident(name string) Expr {
	return Expr{node: ast.NewColumn("", name, "")}
}

// Raw is emitted verbatim, e.g. Raw("CURRENT_DATE").
func Raw(sql string) Expr {
	return Expr{node: ast.NewRaw(sql)}
}

// operandNode turns a comparison argument into a node. Strings are always
// literals; use Ident or Raw for anything that must not be quoted.
func operandNode(v any) ast.Node {
	switch val := v.(type) {
	case Expr:
		return val.node
	case *Pattern:
		return val.node()
	case ast.Node:
		return val
	default:
		return ast.NewValue(v)
	}
}

func operandList(values []any) *ast.Array {
	nodes := make([]ast.Node, len(values))
	for i, v := range values {
		nodes[i] = operandNode(v)
	}
	return ast.NewArray(nodes...)
}

// Operand is the left side of a comparison waiting for its operator. T is
// what the comparison yields: a Condition, or the next stage of a builder.
type Operand[T any] struct {
	left ast.Node
	done func(ast.Node) T
}

func newOperand[T any](column string, done func(ast.Node) T) *Operand[T] {
	return &Operand[T]{left: ast.NewColumn("", column, ""), done: done}
}

// Col starts a stand-alone condition on column. The name is written as given,
// so aggregates like Count("CustomerID") work too.
func Col(column string) *Operand[Condition] {
	return newOperand(column, func(n ast.Node) Condition { return Condition{node: n} })
}

func (o *Operand[T]) compare(op string, v any) T {
	return o.done(ast.NewBinaryExpr(o.left, op, operandNode(v)))
}

func (o *Operand[T]) Eq(v any) T {
	return o.compare(ast.OpEqual, v)
}

func (o *Operand[T]) NotEq(v any) T {
	return o.compare(ast.OpNotEqual, v)
}

func (o *Operand[T]) Gt(v any) T {
	return o.compare(ast.OpGreaterThan, v)
}

func (o *Operand[T]) Lt(v any) T {
	return o.compare(ast.OpLessThan, v)
}

func (o *Operand[T]) Gte(v any) T {
	return o.compare(ast.OpGreaterThanOrEqual, v)
}

func (o *Operand[T]) Lte(v any) T {
	return o.compare(ast.OpLessThanOrEqual, v)
}

func (o *Operand[T]) Between(low, high any) T {
	return o.done(ast.NewBinaryExpr(o.left, ast.OpBetween, &ast.Range{Low: operandNode(low), High: operandNode(high)}))
}

func (o *Operand[T]) NotBetween(low, high any) T {
	return o.done(ast.NewBinaryExpr(o.left, ast.OpNotBetween, &ast.Range{Low: operandNode(low), High: operandNode(high)}))
}

// Like takes the pattern verbatim, wildcards included: Like("a%").
func (o *Operand[T]) Like(pattern string) T {
	return o.compare(ast.OpLike, pattern)
}

func (o *Operand[T]) NotLike(pattern string) T {
	return o.compare(ast.OpNotLike, pattern)
}

// LikePattern spells the wildcards of p for the dialect the statement is built in.
func (o *Operand[T]) LikePattern(p *Pattern) T {
	return o.compare(ast.OpLike, p)
}

func (o *Operand[T]) IsNull() T {
	return o.done(ast.NewUnaryExpr(o.left, ast.OpIsNull, false))
}

func (o *Operand[T]) IsNotNull() T {
	return o.done(ast.NewUnaryExpr(o.left, ast.OpIsNotNull, false))
}

func (o *Operand[T]) In(values ...any) T {
	return o.done(ast.NewBinaryExpr(o.left, ast.OpIn, operandList(values)))
}

func (o *Operand[T]) NotIn(values ...any) T {
	return o.done(ast.NewBinaryExpr(o.left, ast.OpNotIn, operandList(values)))
}

// InSubquery compares against an already built statement: col IN (sql).
func (o *Operand[T]) InSubquery(sql string) T {
	return o.done(ast.NewBinaryExpr(o.left, ast.OpIn, ast.NewSubqueryExpr(ast.NewRaw(sql))))
}

func (o *Operand[T]) NotInSubquery(sql string) T {
	return o.done(ast.NewBinaryExpr(o.left, ast.OpNotIn, ast.NewSubqueryExpr(ast.NewRaw(sql))))
}
