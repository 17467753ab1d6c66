package ast

type Visitor interface {
	VisitSelect(*SelectStmt) error
	VisitInsert(*InsertStmt) error
	VisitUpdate(*UpdateStmt) error
	VisitDelete(*DeleteStmt) error
	VisitCreateTable(*CreateTableStmt) error
	VisitAlterTable(*AlterTableStmt) error
	VisitDropTable(*DropTableStmt) error
	VisitCreateDatabase(*CreateDatabaseStmt) error
	VisitDropDatabase(*DropDatabaseStmt) error

	VisitColumn(*Column) error
	VisitTable(*Table) error
	VisitValue(*Value) error
	VisitRaw(*Raw) error
	VisitArray(*Array) error
	VisitRange(*Range) error
	VisitFunction(*Function) error
	VisitGroupedExpr(*GroupedExpr) error
	VisitBinaryExpr(*BinaryExpr) error
	VisitUnaryExpr(*UnaryExpr) error
	VisitSubqueryExpr(*SubqueryExpr) error
	VisitLikePattern(*LikePattern) error

	VisitWhereClause(*WhereClause) error
	VisitJoinClause(*JoinClause) error
	VisitGroupBy(*GroupByClause) error
	VisitOrderByClause(*OrderByClause) error
	VisitLimitClause(*LimitClause) error
	VisitUnionClause(*UnionClause) error
}
