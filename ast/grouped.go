package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

type GroupedExpr struct {
	Expr Node
}

func (g *GroupedExpr) Type() NodeType {
	return NodeGroupedExpr
}

func (g *GroupedExpr) Accept(v Visitor) error {
	return v.VisitGroupedExpr(g)
}

func (g *GroupedExpr) Fingerprint() uint64 {
	return utils.Fingerprint("group:", fingerprintOf(g.Expr))
}

// BinaryExpr covers comparisons as well as AND and OR.
type BinaryExpr struct {
	Left     Node
	Operator string
	Right    Node
}

func NewBinaryExpr(left Node, op string, right Node) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: op, Right: right}
}

func (b *BinaryExpr) Type() NodeType         { return NodeBinaryExpr }
func (b *BinaryExpr) Accept(v Visitor) error { return v.VisitBinaryExpr(b) }
func (b *BinaryExpr) Fingerprint() uint64 {
	return utils.Fingerprint("bin:"+b.Operator, fingerprintOf(b.Left), fingerprintOf(b.Right))
}

// UnaryExpr is a prefix (NOT, EXISTS) or postfix (IS NULL) operator.
type UnaryExpr struct {
	Operator string
	Operand  Node
	IsPrefix bool
}

func NewUnaryExpr(operand Node, op string, prefix bool) *UnaryExpr {
	return &UnaryExpr{Operator: op, Operand: operand, IsPrefix: prefix}
}

func (u *UnaryExpr) Type() NodeType         { return NodeUnaryExpr }
func (u *UnaryExpr) Accept(v Visitor) error { return v.VisitUnaryExpr(u) }
func (u *UnaryExpr) Fingerprint() uint64 {
	tag := "unary:" + u.Operator
	if u.IsPrefix {
		tag += ":prefix"
	}
	return utils.Fingerprint(tag, fingerprintOf(u.Operand))
}
