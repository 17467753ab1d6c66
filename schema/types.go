package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Konsultn-Engineering/sqlb/ast"
)

func Type(name string, args ...int) *ast.DataType {
	return &ast.DataType{Name: strings.ToUpper(name), Args: args}
}

func Char(n int) *ast.DataType {
	return Type("CHAR", n)
}

func VarChar(n int) *ast.DataType {
	return Type("VARCHAR", n)
}

func Int() *ast.DataType {
	return Type("INT")
}

func SmallInt() *ast.DataType {
	return Type("SMALLINT")
}

func BigInt() *ast.DataType {
	return Type("BIGINT")
}

func Float() *ast.DataType {
	return Type("FLOAT")
}

func Double() *ast.DataType {
	return Type("DOUBLE")
}

func Decimal(precision, scale int) *ast.DataType {
	return Type("DECIMAL", precision, scale)
}

func Boolean() *ast.DataType {
	return Type("BOOLEAN")
}

func Text() *ast.DataType {
	return Type("TEXT")
}

func Blob() *ast.DataType {
	return Type("BLOB")
}

func Date() *ast.DataType {
	return Type("DATE")
}

func DateTime() *ast.DataType {
	return Type("DATETIME")
}

func Timestamp() *ast.DataType {
	return Type("TIMESTAMP")
}

func Time() *ast.DataType {
	return Type("TIME")
}

func Year() *ast.DataType {
	return Type("YEAR")
}

func Enum(values ...string) *ast.DataType {
	return &ast.DataType{Name: "ENUM", Enum: values}
}

// ParseType reads a type written as SQL, e.g. "varchar(255)", "decimal(9, 3)"
// or "enum('S','M','L')".
func ParseType(s string) (*ast.DataType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("schema: empty type")
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		return Type(s), nil
	}
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("schema: unbalanced parentheses in type %q", s)
	}

	name := strings.ToUpper(strings.TrimSpace(s[:open]))
	inner := s[open+1 : len(s)-1]
	parts := strings.Split(inner, ",")

	if name == "ENUM" {
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			values = append(values, strings.Trim(strings.TrimSpace(p), "'\""))
		}
		return Enum(values...), nil
	}

	args := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("schema: invalid argument %q in type %q", p, s)
		}
		args = append(args, n)
	}
	return Type(name, args...), nil
}
