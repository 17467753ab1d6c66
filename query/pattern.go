package query

import (
	"github.com/Konsultn-Engineering/sqlb/ast"
	"github.com/Konsultn-Engineering/sqlb/dialect"
	"github.com/Konsultn-Engineering/sqlb/visitor"
)

// Pattern assembles a LIKE pattern from text and wildcards. The wildcards are
// spelled per dialect when the statement is built: one character is "_" on
// MySQL, Oracle and Postgres and "?" on SQL Server and MS Access.
type Pattern struct {
	parts []ast.PatternPart
}

func NewPattern() *Pattern {
	return &Pattern{}
}

func (p *Pattern) Text(s string) *Pattern {
	p.parts = append(p.parts, ast.PatternPart{Text: s})
	return p
}

// AnyChar matches exactly one character.
func (p *Pattern) AnyChar() *Pattern {
	p.parts = append(p.parts, ast.PatternPart{Wildcard: ast.AnyChar})
	return p
}

// AnyString matches zero or more characters.
func (p *Pattern) AnyString() *Pattern {
	p.parts = append(p.parts, ast.PatternPart{Wildcard: ast.AnyString})
	return p
}

func (p *Pattern) node() ast.Node {
	parts := make([]ast.PatternPart, len(p.parts))
	copy(parts, p.parts)
	return &ast.LikePattern{Parts: parts}
}

// Render returns the quoted pattern for kind, e.g. 'a_%'.
func (p *Pattern) Render(kind dialect.Kind) (string, error) {
	d, err := dialect.For(kind)
	if err != nil {
		return "", err
	}
	return visitor.Render(p.node(), d)
}
