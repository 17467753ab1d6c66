package ast

import (
	"strconv"

	"github.com/Konsultn-Engineering/sqlb/utils"
)

// Wildcard is a LIKE placeholder whose spelling depends on the dialect.
type Wildcard int

const (
	NoWildcard Wildcard = iota
	AnyChar
	AnyString
)

// PatternPart is literal text or a single wildcard.
type PatternPart struct {
	Text     string
	Wildcard Wildcard
}

// LikePattern is a LIKE operand assembled from text and wildcards.
type LikePattern struct {
	Parts []PatternPart
}

func (p *LikePattern) Type() NodeType         { return NodePattern }
func (p *LikePattern) Accept(v Visitor) error { return v.VisitLikePattern(p) }
func (p *LikePattern) Fingerprint() uint64 {
	parts := make([]uint64, len(p.Parts))
	for i, part := range p.Parts {
		parts[i] = utils.FingerprintString(strconv.Itoa(int(part.Wildcard)) + ":" + part.Text)
	}
	return utils.Fingerprint("pattern:", parts...)
}
