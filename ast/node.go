package ast

type NodeType int

const (
	NodeSelect NodeType = iota
	NodeInsert
	NodeUpdate
	NodeDelete
	NodeCreateTable
	NodeAlterTable
	NodeDropTable
	NodeCreateDatabase
	NodeDropDatabase
	NodeColumn
	NodeTable
	NodeValue
	NodeRaw
	NodeArray
	NodeRange
	NodeFunction
	NodeGroupedExpr
	NodeBinaryExpr
	NodeUnaryExpr
	NodeSubqueryExpr
	NodeWhere
	NodeJoin
	NodeGroupBy
	NodeOrderBy
	NodeLimit
	NodeUnion
	NodePattern
)

type Node interface {
	Type() NodeType
	Accept(v Visitor) error
	Fingerprint() uint64
}

// IsComposite reports whether n is a logical combination (AND, OR, NOT)
// rather than a single comparison.
func IsComposite(n Node) bool {
	switch e := n.(type) {
	case *BinaryExpr:
		return e.Operator == OpAnd || e.Operator == OpOr
	case *UnaryExpr:
		return e.Operator == OpNot
	default:
		return false
	}
}

func fingerprintOf(n Node) uint64 {
	if n == nil {
		return 0
	}
	return n.Fingerprint()
}
