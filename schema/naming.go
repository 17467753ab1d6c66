package schema

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

var pluralizeClient = pluralizer.NewClient()

// NamingStrategy turns Go identifiers into table and column names.
type NamingStrategy interface {
	TableName(structName string) string
	ColumnName(fieldName string) string
}

// Case is the word joining convention of a generated name.
type Case int

const (
	SnakeCase  Case = iota // first_name
	PascalCase             // FirstName
	CamelCase              // firstName
)

type namingStrategy struct {
	tables  Case
	columns Case
	plural  bool
}

// NewNamingStrategy combines a table case, a column case and table pluralization.
func NewNamingStrategy(tables, columns Case, pluralTables bool) NamingStrategy {
	return namingStrategy{tables: tables, columns: columns, plural: pluralTables}
}

// DefaultNamingStrategy gives snake_case columns and plural snake_case tables.
func DefaultNamingStrategy() NamingStrategy {
	return NewNamingStrategy(SnakeCase, SnakeCase, true)
}

// PascalNamingStrategy keeps Go spelling: Customer becomes Customers, CustomerName stays.
func PascalNamingStrategy() NamingStrategy {
	return NewNamingStrategy(PascalCase, PascalCase, true)
}

func (n namingStrategy) TableName(structName string) string {
	name := convertCase(structName, n.tables)
	if n.plural {
		return pluralize(name)
	}
	return name
}

func (n namingStrategy) ColumnName(fieldName string) string {
	return convertCase(fieldName, n.columns)
}

func convertCase(name string, c Case) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}
	switch c {
	case PascalCase:
		if !strings.Contains(name, "_") {
			return name
		}
		for i, w := range words {
			words[i] = capitalize(w)
		}
		return strings.Join(words, "")
	case CamelCase:
		for i, w := range words {
			if i == 0 {
				words[i] = strings.ToLower(w)
			} else {
				words[i] = capitalize(w)
			}
		}
		return strings.Join(words, "")
	default:
		for i, w := range words {
			words[i] = strings.ToLower(w)
		}
		return strings.Join(words, "_")
	}
}

// splitWords breaks an identifier at underscores and case changes.
// An acronym stays one word: "HTTPServerID" gives HTTP, Server, ID.
func splitWords(name string) []string {
	var words []string
	for _, part := range strings.Split(name, "_") {
		runes := []rune(part)
		start := 0
		for i := 1; i < len(runes); i++ {
			prev, cur := runes[i-1], runes[i]
			boundary := (unicode.IsLower(prev) || unicode.IsDigit(prev)) && unicode.IsUpper(cur)
			if !boundary && unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				boundary = true
			}
			if boundary {
				words = append(words, string(runes[start:i]))
				start = i
			}
		}
		if start < len(runes) {
			words = append(words, string(runes[start:]))
		}
	}
	return words
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// pluralize pluralizes the last word only, so "order_item" becomes "order_items".
func pluralize(name string) string {
	if name == "" {
		return ""
	}
	cut := strings.LastIndexFunc(name, func(r rune) bool { return r == '_' || unicode.IsUpper(r) })
	if cut < 0 {
		cut = 0
	}
	if name[cut] == '_' {
		cut++
	}
	head, last := name[:cut], name[cut:]
	plural := pluralizeClient.Plural(strings.ToLower(last))
	return head + preserveCase(last, plural)
}

func preserveCase(original, plural string) string {
	if original == "" || plural == "" {
		return plural
	}
	if strings.ToUpper(original) == original && len(original) > 1 {
		return strings.ToUpper(plural)
	}
	if unicode.IsUpper([]rune(original)[0]) {
		return capitalize(plural)
	}
	return plural
}
