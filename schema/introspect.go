package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/Konsultn-Engineering/sqlb/ast"
)

var ErrNotStruct = errors.New("schema: model must be a struct or a pointer to one")

// TableNamer lets a model pick its own table name.
type TableNamer interface {
	TableName() string
}

// Table is the table definition derived from a model.
type Table struct {
	Name    string
	Columns []*ast.ColumnDef
}

// Introspector derives tables from structs and caches the result per type.
type Introspector struct {
	naming NamingStrategy
	tags   *TagParser
	cache  sync.Map // map[reflect.Type]*Table
}

func NewIntrospector(naming NamingStrategy) *Introspector {
	if naming == nil {
		naming = DefaultNamingStrategy()
	}
	return &Introspector{naming: naming, tags: NewTagParser(naming)}
}

var defaultIntrospector = NewIntrospector(DefaultNamingStrategy())

// Introspect uses the default snake_case naming.
func Introspect(model any) (*Table, error) {
	return defaultIntrospector.Introspect(model)
}

// Introspect returns the table for model, a struct value, a pointer to one or a reflect.Type.
// The result is shared between callers and must not be modified.
func (in *Introspector) Introspect(model any) (*Table, error) {
	if model == nil {
		return nil, ErrNotStruct
	}
	t, ok := model.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(model)
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, t.Kind())
	}

	if cached, ok := in.cache.Load(t); ok {
		return cached.(*Table), nil
	}

	table := &Table{Name: in.naming.TableName(t.Name())}
	if tn, ok := reflect.New(t).Interface().(TableNamer); ok {
		table.Name = tn.TableName()
	}

	cols, err := in.columns(t)
	if err != nil {
		return nil, fmt.Errorf("schema: %s: %w", t.Name(), err)
	}
	table.Columns = cols

	actual, _ := in.cache.LoadOrStore(t, table)
	return actual.(*Table), nil
}

func (in *Introspector) columns(t reflect.Type) ([]*ast.ColumnDef, error) {
	var cols []*ast.ColumnDef
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		if f.Anonymous && f.Tag.Get("db") == "" {
			et := f.Type
			if et.Kind() == reflect.Ptr {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				embedded, err := in.columns(et)
				if err != nil {
					return nil, err
				}
				cols = append(cols, embedded...)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}

		tag, err := in.tags.ParseTag(f.Name, f.Tag)
		if err != nil {
			return nil, err
		}
		if tag.Skip {
			continue
		}

		col, err := columnFromTag(f, tag)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func columnFromTag(f reflect.StructField, tag *ParsedTag) (*ast.ColumnDef, error) {
	var (
		dt  *ast.DataType
		err error
	)
	switch {
	case tag.Type != "":
		dt, err = ParseType(tag.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
	case len(tag.Enum) > 0:
		dt = Enum(tag.Enum...)
	default:
		var ok bool
		dt, ok = SQLTypeFor(f.Type)
		if !ok {
			return nil, fmt.Errorf("field %s: no SQL type for %s, set one with db:\"type:...\"", f.Name, f.Type)
		}
		if tag.Size > 0 && dt.Name == "VARCHAR" {
			dt = VarChar(tag.Size)
		}
	}

	col := Column(tag.ColumnName, dt)
	if tag.NotNull || tag.Primary {
		col.Constraints = append(col.Constraints, NotNull())
	}
	if tag.Default != nil {
		col.Constraints = append(col.Constraints, defaultFor(f.Type, *tag.Default))
	}
	if tag.Identity {
		col.Constraints = append(col.Constraints, Identity())
	}
	if tag.Unique {
		col.Constraints = append(col.Constraints, Unique())
	}
	if tag.Primary {
		col.Constraints = append(col.Constraints, PrimaryKey())
	}
	if tag.ForeignKey != "" {
		table, column := tag.References()
		col.Constraints = append(col.Constraints, ForeignKey(table, column))
	}
	if tag.Check != "" {
		col.Constraints = append(col.Constraints, Check(tag.Check))
	}
	return col, nil
}

// defaultFor turns a tag default into a literal of the field's kind so the
// dialect spells it. Keywords and values that do not parse stay verbatim.
func defaultFor(t reflect.Type, raw string) *ast.ColumnConstraint {
	switch strings.ToUpper(raw) {
	case "NULL", "CURRENT_TIMESTAMP", "CURRENT_DATE", "CURRENT_TIME":
		return DefaultExpr(raw)
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return Default(b)
		}
		return DefaultExpr(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Default(n)
		}
		return DefaultExpr(raw)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return Default(n)
		}
		return DefaultExpr(raw)
	case reflect.Float32, reflect.Float64:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return Default(f)
		}
		return DefaultExpr(raw)
	case reflect.String:
		return Default(raw)
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return DefaultExpr(raw)
	}
	return Default(raw)
}
