package schema

import (
	"database/sql"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/sqlb/ast"
)

// =========================================================================
// Test Data Structures
// =========================================================================

type Person struct {
	ID        int       `db:"column:PersonID;primary;auto"`
	LastName  string    `db:"column:LastName;size:100;not null"`
	FirstName *string   `db:"FirstName"`
	Age       int       `db:"column:Age;check:Age>=18;default:18"`
	City      string    `db:"column:City;default:Unknown"`
	CreatedAt time.Time `db:"column:CreatedAt;default:CURRENT_TIMESTAMP"`
	Secret    string    `db:"-"`
	internal  string
}

type Order struct {
	OrderID  uint64  `db:"primary"`
	PersonID int32   `db:"fk:persons.person_id"`
	Total    float64 `db:"type:decimal(9,2)"`
	Size     string  `db:"enum:S|M|L"`
	Token    uuid.UUID
	Note     sql.NullString
}

type Audit struct {
	CreatedBy string
}

type OrderItem struct {
	Audit
	Quantity int16
}

type Legacy struct {
	Code string
}

func (Legacy) TableName() string { return "tbl_legacy" }

type Unsupported struct {
	Payload map[string]string
}

type BadTag struct {
	Name string `db:"size:abc"`
}

// =========================================================================
// Descriptor Tests
// =========================================================================

func TestParseType(t *testing.T) {
	tests := []struct {
		in       string
		expected *ast.DataType
		wantErr  bool
	}{
		{"int", &ast.DataType{Name: "INT"}, false},
		{"varchar(255)", &ast.DataType{Name: "VARCHAR", Args: []int{255}}, false},
		{"decimal(9, 3)", &ast.DataType{Name: "DECIMAL", Args: []int{9, 3}}, false},
		{"enum('S','M')", &ast.DataType{Name: "ENUM", Enum: []string{"S", "M"}}, false},
		{"varchar(x)", nil, true},
		{"varchar(10", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			dt, err := ParseType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dt)
		})
	}
}

func TestConstraintFactories(t *testing.T) {
	col := Column("PersonID", Int(), NotNull(), ForeignKey("Persons", "PersonID"))
	require.Len(t, col.Constraints, 2)
	assert.Equal(t, ast.ConstraintNotNull, col.Constraints[0].Kind)
	assert.Equal(t, "Persons", col.Constraints[1].References.Table)

	assert.Equal(t, ast.ConstraintIdentity, Identity().Kind)
	assert.Equal(t, "Age>=18", Check("Age>=18").Check)
	assert.Equal(t, &ast.Value{Val: "Unknown"}, Default("Unknown").Default)
	assert.Equal(t, &ast.Raw{SQL: "CURRENT_TIMESTAMP"}, DefaultExpr("CURRENT_TIMESTAMP").Default)

	fk := ForeignKeyConstraint("FK_PersonOrder", []string{"OrderID"}, "Orders", "ID")
	assert.Equal(t, []string{"OrderID"}, fk.Columns)
	assert.Equal(t, []string{"ID"}, fk.References.Columns)
	assert.Equal(t, []string{"ID", "LastName"}, PrimaryKeyConstraint("PK_Person", "ID", "LastName").Columns)
	assert.Equal(t, ast.ConstraintUnique, UniqueConstraint("UC", "ID").Kind)
	assert.Equal(t, ast.ConstraintCheck, CheckConstraint("CHK", "Age>=16").Kind)
}

// =========================================================================
// Naming Tests
// =========================================================================

func TestNamingStrategies(t *testing.T) {
	snake := DefaultNamingStrategy()
	pascal := PascalNamingStrategy()
	camel := NewNamingStrategy(CamelCase, CamelCase, false)

	tests := []struct {
		in     string
		snake  string
		pascal string
		camel  string
	}{
		{"Customer", "customers", "Customers", "customer"},
		{"OrderItem", "order_items", "OrderItems", "orderItem"},
		{"Person", "people", "People", "person"},
		{"HTTPRequest", "http_requests", "HTTPRequests", "httpRequest"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.snake, snake.TableName(tt.in))
			assert.Equal(t, tt.pascal, pascal.TableName(tt.in))
			assert.Equal(t, tt.camel, camel.TableName(tt.in))
		})
	}

	assert.Equal(t, "first_name", snake.ColumnName("FirstName"))
	assert.Equal(t, "user_id", snake.ColumnName("UserID"))
	assert.Equal(t, "CustomerName", pascal.ColumnName("CustomerName"))
	assert.Equal(t, "FirstName", pascal.ColumnName("first_name"))
	assert.Equal(t, "firstName", camel.ColumnName("FirstName"))
}

// =========================================================================
// Tag Tests
// =========================================================================

func TestParseTag(t *testing.T) {
	p := NewTagParser(DefaultNamingStrategy())

	tag, err := p.ParseTag("PersonID", `db:"fk:Persons.PersonID;not null"`)
	require.NoError(t, err)
	table, column := tag.References()
	assert.Equal(t, "Persons", table)
	assert.Equal(t, "PersonID", column)
	assert.True(t, tag.NotNull)
	assert.Equal(t, "person_id", tag.ColumnName)

	tag, err = p.ParseTag("Name", `db:"unique"`)
	require.NoError(t, err)
	assert.True(t, tag.Unique)
	assert.Equal(t, "name", tag.ColumnName)

	tag, err = p.ParseTag("Name", `db:"FullName"`)
	require.NoError(t, err)
	assert.Equal(t, "FullName", tag.ColumnName)

	tag, err = p.ParseTag("Name", `db:"-"`)
	require.NoError(t, err)
	assert.True(t, tag.Skip)

	_, err = p.ParseTag("Name", `db:"size:-1"`)
	assert.Error(t, err)
	_, err = p.ParseTag("Name", `db:"fk:nodot"`)
	assert.Error(t, err)
	_, err = p.ParseTag("Name", `db:"bogus;unique"`)
	assert.Error(t, err)
	_, err = p.ParseTag("Name", `db:"colour:red"`)
	assert.Error(t, err)
}

// =========================================================================
// Introspection Tests
// =========================================================================

func TestIntrospect(t *testing.T) {
	tests := []struct {
		name          string
		model         any
		expectError   bool
		expectedCols  int
		expectedTable string
	}{
		{"Struct", Person{}, false, 6, "people"},
		{"Pointer", &Person{}, false, 6, "people"},
		{"ReflectType", reflect.TypeOf(Order{}), false, 6, "orders"},
		{"Embedded", OrderItem{}, false, 2, "order_items"},
		{"TableNamer", Legacy{}, false, 1, "tbl_legacy"},
		{"String", "string", true, 0, ""},
		{"Int", 42, true, 0, ""},
		{"Nil", nil, true, 0, ""},
		{"UnmappedType", Unsupported{}, true, 0, ""},
		{"BadTag", BadTag{}, true, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Introspect(tt.model)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTable, table.Name)
			assert.Len(t, table.Columns, tt.expectedCols)
		})
	}

	_, err := Introspect(42)
	assert.ErrorIs(t, err, ErrNotStruct)
}

func TestIntrospectColumns(t *testing.T) {
	table, err := Introspect(Person{})
	require.NoError(t, err)

	byName := map[string]*ast.ColumnDef{}
	for _, c := range table.Columns {
		byName[c.Name] = c
	}

	id := byName["PersonID"]
	require.NotNil(t, id)
	assert.Equal(t, "BIGINT", id.Type.Name)
	kinds := []ast.ConstraintKind{}
	for _, c := range id.Constraints {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []ast.ConstraintKind{ast.ConstraintNotNull, ast.ConstraintIdentity, ast.ConstraintPrimaryKey}, kinds)

	assert.Equal(t, []int{100}, byName["LastName"].Type.Args)
	assert.Empty(t, byName["FirstName"].Constraints)
	assert.Equal(t, &ast.Value{Val: int64(18)}, byName["Age"].Constraints[0].Default)
	assert.Equal(t, &ast.Value{Val: "Unknown"}, byName["City"].Constraints[0].Default)
	assert.Equal(t, &ast.Raw{SQL: "CURRENT_TIMESTAMP"}, byName["CreatedAt"].Constraints[0].Default)
	assert.Equal(t, "DATETIME", byName["CreatedAt"].Type.Name)

	order, err := Introspect(Order{})
	require.NoError(t, err)
	assert.Equal(t, "order_id", order.Columns[0].Name)
	assert.Equal(t, &ast.DataType{Name: "DECIMAL", Args: []int{9, 2}}, order.Columns[2].Type)
	assert.Equal(t, []string{"S", "M", "L"}, order.Columns[3].Type.Enum)
	assert.Equal(t, []int{36}, order.Columns[4].Type.Args)
	assert.Equal(t, "VARCHAR", order.Columns[5].Type.Name)

	again, err := Introspect(&Order{})
	require.NoError(t, err)
	assert.Same(t, order, again)
}

func TestDefaultFor(t *testing.T) {
	tests := []struct {
		name     string
		field    any
		raw      string
		expected ast.Node
	}{
		{"Bool", false, "true", &ast.Value{Val: true}},
		{"BoolPointer", new(bool), "0", &ast.Value{Val: false}},
		{"Int", 0, "-7", &ast.Value{Val: int64(-7)}},
		{"Uint", uint16(0), "7", &ast.Value{Val: uint64(7)}},
		{"Float", 0.0, "1.5", &ast.Value{Val: 1.5}},
		{"String", "", "42", &ast.Value{Val: "42"}},
		{"Null", 0, "NULL", &ast.Raw{SQL: "NULL"}},
		{"Keyword", time.Time{}, "current_date", &ast.Raw{SQL: "current_date"}},
		{"Unparsed", 0, "nextval('seq')", &ast.Raw{SQL: "nextval('seq')"}},
		{"Text", time.Time{}, "2024-01-01", &ast.Value{Val: "2024-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultFor(reflect.TypeOf(tt.field), tt.raw)
			assert.Equal(t, ast.ConstraintDefault, c.Kind)
			assert.Equal(t, tt.expected, c.Default)
		})
	}
}

func TestSQLTypeFor(t *testing.T) {
	tests := []struct {
		in       any
		expected string
	}{
		{"", "VARCHAR"},
		{true, "BOOLEAN"},
		{int8(0), "SMALLINT"},
		{int32(0), "INT"},
		{int64(0), "BIGINT"},
		{float32(0), "FLOAT"},
		{float64(0), "DOUBLE"},
		{time.Time{}, "DATETIME"},
		{[]byte{}, "BLOB"},
		{sql.NullInt64{}, "BIGINT"},
	}
	for _, tt := range tests {
		dt, ok := SQLTypeFor(reflect.TypeOf(tt.in))
		require.True(t, ok, "%T", tt.in)
		assert.Equal(t, tt.expected, dt.Name, "%T", tt.in)
	}

	_, ok := SQLTypeFor(reflect.TypeOf(struct{}{}))
	assert.False(t, ok)
}
