package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ParsedTag is the DDL relevant content of a `db:"..."` struct tag.
type ParsedTag struct {
	ColumnName string
	Skip       bool
	Type       string
	Size       int

	NotNull    bool
	Primary    bool
	Unique     bool
	Identity   bool
	Default    *string
	ForeignKey string // table.column
	Check      string
	Enum       []string
}

// TagParser parses and caches struct tags.
type TagParser struct {
	namingStrategy NamingStrategy
	cache          map[string]*ParsedTag
	cacheMu        sync.RWMutex
}

func NewTagParser(namingStrategy NamingStrategy) *TagParser {
	return &TagParser{
		namingStrategy: namingStrategy,
		cache:          make(map[string]*ParsedTag, 64),
	}
}

// ParseTag reads the db tag of a field.
//
// Supported syntax:
//
//	`db:"column_name"`                       // column name only
//	`db:"column:PersonID;primary;not null"`  // name plus flags
//	`db:"type:decimal(9,3);default:0"`       // explicit type and default
//	`db:"size:100;unique"`                   // VARCHAR(100)
//	`db:"fk:Persons.PersonID"`               // foreign key
//	`db:"check:Age>=18"`                     // check predicate
//	`db:"enum:S|M|L"`                        // ENUM type
//	`db:"auto"`                              // identity column
//	`db:"-"`                                 // skipped
func (p *TagParser) ParseTag(fieldName string, tag reflect.StructTag) (*ParsedTag, error) {
	tagValue := tag.Get("db")

	if tagValue == "" {
		return &ParsedTag{ColumnName: p.namingStrategy.ColumnName(fieldName)}, nil
	}

	cacheKey := fieldName + ":" + tagValue
	p.cacheMu.RLock()
	if cached, exists := p.cache[cacheKey]; exists {
		p.cacheMu.RUnlock()
		return cached, nil
	}
	p.cacheMu.RUnlock()

	parsed, err := p.parseTagValue(fieldName, tagValue)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", fieldName, err)
	}

	p.cacheMu.Lock()
	p.cache[cacheKey] = parsed
	p.cacheMu.Unlock()

	return parsed, nil
}

func (p *TagParser) parseTagValue(fieldName, tagValue string) (*ParsedTag, error) {
	if tagValue == "-" {
		return &ParsedTag{Skip: true}, nil
	}

	parsed := &ParsedTag{ColumnName: p.namingStrategy.ColumnName(fieldName)}

	if !strings.ContainsAny(tagValue, ";:") {
		if isFlag(tagValue) {
			return parsed, p.parseFlag(parsed, tagValue)
		}
		parsed.ColumnName = tagValue
		return parsed, nil
	}

	for _, option := range strings.Split(tagValue, ";") {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		if colonIdx := strings.IndexByte(option, ':'); colonIdx != -1 {
			key := strings.TrimSpace(option[:colonIdx])
			value := strings.TrimSpace(option[colonIdx+1:])
			if err := p.parseKeyValue(parsed, key, value); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.parseFlag(parsed, option); err != nil {
			return nil, err
		}
	}

	return parsed, nil
}

func isFlag(s string) bool {
	switch s {
	case "primary", "primary_key", "unique", "not_null", "not null", "auto", "auto_increment", "identity":
		return true
	}
	return false
}

func (p *TagParser) parseFlag(tag *ParsedTag, flag string) error {
	switch flag {
	case "primary", "primary_key":
		tag.Primary = true
	case "unique":
		tag.Unique = true
	case "not_null", "not null":
		tag.NotNull = true
	case "auto", "auto_increment", "identity":
		tag.Identity = true
	case "null":
		tag.NotNull = false
	default:
		return fmt.Errorf("unknown flag %q", flag)
	}
	return nil
}

func (p *TagParser) parseKeyValue(tag *ParsedTag, key, value string) error {
	switch key {
	case "column", "name":
		tag.ColumnName = value
	case "type":
		tag.Type = value
	case "size":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid size %q: must be a positive integer", value)
		}
		tag.Size = n
	case "default":
		v := value
		tag.Default = &v
	case "fk", "foreign_key", "references":
		if !strings.Contains(value, ".") {
			return fmt.Errorf("invalid foreign key %q: want table.column", value)
		}
		tag.ForeignKey = value
	case "check":
		tag.Check = value
	case "enum":
		sep := ","
		if strings.Contains(value, "|") {
			sep = "|"
		}
		for _, v := range strings.Split(value, sep) {
			tag.Enum = append(tag.Enum, strings.TrimSpace(v))
		}
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}

// References splits the foreign key target into table and column.
func (tag *ParsedTag) References() (table, column string) {
	i := strings.LastIndexByte(tag.ForeignKey, '.')
	if i < 0 {
		return "", ""
	}
	return tag.ForeignKey[:i], tag.ForeignKey[i+1:]
}
