package ast

import "testing"

func BenchmarkSelectStmtFingerprint(b *testing.B) {
	stmt := &SelectStmt{
		Columns: Columns("CustomerID", "CustomerName", "ContactName", "City", "Country"),
		From:    NewTable("", "Customers", ""),
		Where: NewWhereClause(And(
			Compare("Country", OpEqual, NewValue("Germany")),
			Or(Compare("City", OpEqual, NewValue("Berlin")), Compare("City", OpEqual, NewValue("Munich"))),
		)),
		Limit: NewLimitClause(10),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stmt.Fingerprint()
	}
	b.ReportAllocs()
}
