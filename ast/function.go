package ast

import "github.com/Konsultn-Engineering/sqlb/utils"

// Function is a call such as COUNT(CustomerID), with an optional alias.
type Function struct {
	Name  string
	Args  []Node
	Alias string
}

func (f *Function) Type() NodeType         { return NodeFunction }
func (f *Function) Accept(v Visitor) error { return v.VisitFunction(f) }
func (f *Function) Fingerprint() uint64 {
	parts := make([]uint64, 0, len(f.Args)+1)
	parts = append(parts, utils.FingerprintStrings("", f.Name, f.Alias))
	for _, arg := range f.Args {
		parts = append(parts, fingerprintOf(arg))
	}
	return utils.Fingerprint("func:", parts...)
}
