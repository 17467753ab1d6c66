package utils

import "strings"

// Encloser is a pair of delimiters wrapped around a fragment.
type Encloser int

const (
	NoEncloser Encloser = iota
	Single
	Double
	Parentheses
	Braces
	Brackets
	Guillemet
	SingleGuillemet
)

var enclosers = [...][2]string{
	NoEncloser:      {"", ""},
	Single:          {"'", "'"},
	Double:          {`"`, `"`},
	Parentheses:     {"(", ")"},
	Braces:          {"{", "}"},
	Brackets:        {"[", "]"},
	Guillemet:       {"<<", ">>"},
	SingleGuillemet: {"<", ">"},
}

func (e Encloser) Open() string {
	if e < 0 || int(e) >= len(enclosers) {
		return ""
	}
	return enclosers[e][0]
}

func (e Encloser) Close() string {
	if e < 0 || int(e) >= len(enclosers) {
		return ""
	}
	return enclosers[e][1]
}

func Enclose(s string, e Encloser) string {
	return e.Open() + s + e.Close()
}

// Join concatenates items with sep. A single item is returned unchanged.
func Join(items []string, sep string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items, sep)
}

// JoinEnclosed wraps every item with e before joining them with sep.
func JoinEnclosed(items []string, sep string, e Encloser) string {
	var sb strings.Builder
	for i, it := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(e.Open())
		sb.WriteString(it)
		sb.WriteString(e.Close())
	}
	return sb.String()
}
