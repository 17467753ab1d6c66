package utils

import (
	"fmt"
	"strings"
)

const (
	placeholder        = "{}"
	escapedPlaceholder = "{{}}"
)

// Str fills the "{}" placeholders in format with args, in order.
// Placeholders without a matching argument are left as is, surplus
// arguments are ignored. "{{}}" produces a literal "{}".
func Str(format string, args ...any) string {
	if !strings.Contains(format, placeholder) {
		return format
	}

	var sb strings.Builder
	sb.Grow(len(format) + 16*len(args))

	next := 0
	for i := 0; i < len(format); {
		if strings.HasPrefix(format[i:], escapedPlaceholder) {
			sb.WriteString(placeholder)
			i += len(escapedPlaceholder)
			continue
		}
		if strings.HasPrefix(format[i:], placeholder) {
			if next < len(args) {
				sb.WriteString(toString(args[next]))
				next++
			} else {
				sb.WriteString(placeholder)
			}
			i += len(placeholder)
			continue
		}
		sb.WriteByte(format[i])
		i++
	}
	return sb.String()
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
