package ast

import (
	"strconv"

	"github.com/Konsultn-Engineering/sqlb/utils"
)

type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
)

func (j JoinType) Keyword() string {
	switch j {
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL OUTER JOIN"
	default:
		return "INNER JOIN"
	}
}

type JoinClause struct {
	JoinType JoinType
	Table    *Table
	On       Node
}

func NewJoinClause(joinType JoinType, table *Table, on Node) *JoinClause {
	return &JoinClause{JoinType: joinType, Table: table, On: on}
}

func (j *JoinClause) Type() NodeType         { return NodeJoin }
func (j *JoinClause) Accept(v Visitor) error { return v.VisitJoinClause(j) }

func (j *JoinClause) Fingerprint() uint64 {
	var table uint64
	if j.Table != nil {
		table = j.Table.Fingerprint()
	}
	return utils.Fingerprint("join:"+strconv.Itoa(int(j.JoinType)), table, fingerprintOf(j.On))
}

// JoinOn builds "left.column = right.column".
func JoinOn(leftTable, rightTable, column string) Node {
	return NewBinaryExpr(
		NewColumn(leftTable, column, ""),
		OpEqual,
		NewColumn(rightTable, column, ""),
	)
}
