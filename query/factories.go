package query

import (
	"github.com/Konsultn-Engineering/sqlb/ast"
	"github.com/Konsultn-Engineering/sqlb/utils"
)

// Assignment is one column = value pair of an INSERT or UPDATE.
type Assignment struct {
	Column string
	Value  any
}

// Set pairs a column with a value. Values follow the same quoting rules as
// comparisons; pass Raw or Ident to avoid quoting.
func Set(column string, value any) Assignment {
	return Assignment{Column: column, Value: value}
}

func (a Assignment) node() ast.Node {
	return operandNode(a.Value)
}

// Aggregates render to column text, so they can be passed to Select, GroupBy,
// OrderBy or Col: Max("Price", "LargestPrice") gives "MAX(Price) AS LargestPrice".

func Max(column string, alias ...string) string {
	return aggregate("MAX", column, alias)
}

func Min(column string, alias ...string) string {
	return aggregate("MIN", column, alias)
}

func Sum(column string, alias ...string) string {
	return aggregate("SUM", column, alias)
}

func Avg(column string, alias ...string) string {
	return aggregate("AVG", column, alias)
}

func Count(column string, alias ...string) string {
	return aggregate("COUNT", column, alias)
}

// CountDistinct gives COUNT(DISTINCT column).
func CountDistinct(column string, alias ...string) string {
	return aggregate("COUNT", "DISTINCT "+column, alias)
}

func aggregate(fn, column string, alias []string) string {
	s := utils.Str("{}{}", fn, utils.Enclose(column, utils.Parentheses))
	if len(alias) > 0 && alias[0] != "" {
		s = utils.Str("{} AS {}", s, alias[0])
	}
	return s
}

// As aliases a column: As("CustomerName", "Customer") gives "CustomerName AS Customer".
func As(column, alias string) string {
	return utils.Str("{} AS {}", column, alias)
}
