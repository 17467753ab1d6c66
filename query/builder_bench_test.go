package query

import (
	"testing"

	"github.com/Konsultn-Engineering/sqlb/cache"
	"github.com/Konsultn-Engineering/sqlb/dialect"
)

func benchSelect(b *Builder) *SelectTail {
	return &b.SelectLimit(10, "CustomerID", "CustomerName", "City").
		From("Customers").
		Where("Country").Eq("Germany").
		And(Col("City").Eq("Berlin").Or(Col("City").Eq("Munich"))).
		SelectTail
}

func BenchmarkSelectBuild(b *testing.B) {
	for _, k := range dialect.Kinds() {
		b.Run(string(k), func(b *testing.B) {
			builder := New(WithDialect(k))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = benchSelect(builder).Build()
			}
		})
	}
}

func BenchmarkSelectBuildCached(b *testing.B) {
	builder := New(WithCache(cache.NewStatements(cache.DefaultSize)))
	stmt := benchSelect(builder)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stmt.Build()
	}
}
