package ast

import (
	"fmt"

	"github.com/Konsultn-Engineering/sqlb/utils"
)

// Value is a literal. The dialect decides how it is written.
type Value struct {
	Val any
}

func NewValue(val any) *Value {
	return &Value{Val: val}
}

func (v *Value) Type() NodeType           { return NodeValue }
func (v *Value) Accept(vis Visitor) error { return vis.VisitValue(v) }
func (v *Value) Fingerprint() uint64 {
	return utils.FingerprintString(fmt.Sprintf("val:%T:%v", v.Val, v.Val))
}

// Raw is SQL text emitted without any quoting.
type Raw struct {
	SQL string
}

func NewRaw(sql string) *Raw {
	return &Raw{SQL: sql}
}

func (r *Raw) Type() NodeType         { return NodeRaw }
func (r *Raw) Accept(v Visitor) error { return v.VisitRaw(r) }
func (r *Raw) Fingerprint() uint64 {
	return utils.FingerprintString("raw:" + r.SQL)
}
