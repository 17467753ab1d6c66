package dialect

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// literalStyle captures the few ways dialects disagree on literal syntax.
type literalStyle struct {
	trueLit    string
	falseLit   string
	timeOpen   string
	timeClose  string
	timeLayout string
}

var ansiLiterals = literalStyle{
	trueLit:    "TRUE",
	falseLit:   "FALSE",
	timeOpen:   "'",
	timeClose:  "'",
	timeLayout: "2006-01-02 15:04:05",
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func renderValue(v any, style literalStyle) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quote(val)
	case bool:
		if val {
			return style.trueLit
		}
		return style.falseLit
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64)
	case time.Time:
		return style.timeOpen + val.Format(style.timeLayout) + style.timeClose
	case uuid.UUID:
		return quote(val.String())
	case ulid.ULID:
		return quote(val.String())
	case fmt.Stringer:
		return quote(val.String())
	default:
		return quote(fmt.Sprint(val))
	}
}
