package visitor

import (
	"testing"

	"github.com/Konsultn-Engineering/sqlb/ast"
	"github.com/Konsultn-Engineering/sqlb/dialect"
)

func benchStmt() *ast.SelectStmt {
	return &ast.SelectStmt{
		Columns: ast.Columns("CustomerID", "CustomerName", "City", "Country"),
		From:    ast.NewTable("", "Customers", ""),
		Where: ast.NewWhereClause(ast.And(
			ast.Compare("Country", ast.OpEqual, ast.NewValue("Germany")),
			ast.Or(
				ast.Compare("City", ast.OpEqual, ast.NewValue("Berlin")),
				ast.Compare("City", ast.OpEqual, ast.NewValue("Munich")),
			),
		)),
		Limit: ast.NewLimitClause(10),
	}
}

func BenchmarkVisitorBuild(b *testing.B) {
	for _, k := range dialect.Kinds() {
		d, _ := dialect.For(k)
		stmt := benchStmt()
		b.Run(string(k), func(b *testing.B) {
			v := NewSQLVisitor(d)
			defer v.Release()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = v.Build(stmt)
				v.Reset()
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkRenderPooled(b *testing.B) {
	d := dialect.NewMySQLDialect()
	stmt := benchStmt()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Render(stmt, d)
	}
	b.ReportAllocs()
}
