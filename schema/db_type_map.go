package schema

import (
	"database/sql"
	"reflect"
	"time"

	"github.com/Konsultn-Engineering/sqlb/ast"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// DefaultStringSize is the VARCHAR length used when a string field has no size.
const DefaultStringSize = 255

var (
	timeType       = reflect.TypeOf(time.Time{})
	bytesType      = reflect.TypeOf([]byte{})
	uuidType       = reflect.TypeOf(uuid.UUID{})
	ulidType       = reflect.TypeOf(ulid.ULID{})
	nullStringType = reflect.TypeOf(sql.NullString{})
	nullInt64Type  = reflect.TypeOf(sql.NullInt64{})
	nullInt32Type  = reflect.TypeOf(sql.NullInt32{})
	nullBoolType   = reflect.TypeOf(sql.NullBool{})
	nullFloatType  = reflect.TypeOf(sql.NullFloat64{})
	nullTimeType   = reflect.TypeOf(sql.NullTime{})
)

// typeMap covers struct and slice types that kind alone cannot resolve.
var typeMap = map[reflect.Type]func() *ast.DataType{
	timeType:       DateTime,
	bytesType:      Blob,
	uuidType:       func() *ast.DataType { return Char(36) },
	ulidType:       func() *ast.DataType { return Char(26) },
	nullStringType: func() *ast.DataType { return VarChar(DefaultStringSize) },
	nullInt64Type:  BigInt,
	nullInt32Type:  Int,
	nullBoolType:   Boolean,
	nullFloatType:  Double,
	nullTimeType:   DateTime,
}

// SQLTypeFor maps a Go type to a column type. Pointers map like their element.
// The boolean is false when no mapping exists.
func SQLTypeFor(t reflect.Type) (*ast.DataType, bool) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := typeMap[t]; ok {
		return f(), true
	}

	switch t.Kind() {
	case reflect.String:
		return VarChar(DefaultStringSize), true
	case reflect.Bool:
		return Boolean(), true
	case reflect.Int8, reflect.Int16, reflect.Uint8:
		return SmallInt(), true
	case reflect.Int32, reflect.Uint16:
		return Int(), true
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint32, reflect.Uint64:
		return BigInt(), true
	case reflect.Float32:
		return Float(), true
	case reflect.Float64:
		return Double(), true
	}
	return nil, false
}
