package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

// Array is a parenthesized list of operands, as used by IN.
type Array struct {
	Values []Node
}

func NewArray(values ...Node) *Array {
	return &Array{Values: values}
}

func (a *Array) Type() NodeType {
	return NodeArray
}

func (a *Array) Accept(v Visitor) error {
	return v.VisitArray(a)
}

func (a *Array) Fingerprint() uint64 {
	parts := make([]uint64, len(a.Values))
	for i, val := range a.Values {
		parts[i] = fingerprintOf(val)
	}
	return utils.Fingerprint("array:", parts...)
}

// Range is the "low AND high" operand of BETWEEN.
type Range struct {
	Low  Node
	High Node
}

func (r *Range) Type() NodeType         { return NodeRange }
func (r *Range) Accept(v Visitor) error { return v.VisitRange(r) }
func (r *Range) Fingerprint() uint64 {
	return utils.Fingerprint("range:", fingerprintOf(r.Low), fingerprintOf(r.High))
}
