// backend-go/internal/inventory/parse.go
package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// CellString renders a raw cell value as a trimmed string. Nil cells
// become "".
func CellString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strings.TrimSpace(strconv.FormatFloat(s, 'f', -1, 64))
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// ParseMoney parses a possibly-formatted money cell ("$1,234.50").
// Every character that is not a digit, a minus sign or a period is
// stripped before parsing. Unparseable values coerce to 0.
func ParseMoney(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}

	s := CellString(v)
	if s == "" {
		return 0
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// ToNumber parses a plain numeric cell. Empty and unparseable values
// coerce to 0.
func ToNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}

	s := CellString(v)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseBool parses truthy/falsy cell text. Anything outside the two
// token sets falls back to the field-specific default.
func ParseBool(v interface{}, def bool) bool {
	switch n := v.(type) {
	case bool:
		return n
	case float64:
		if n == 1 {
			return true
		}
		if n == 0 {
			return false
		}
		return def
	}

	switch strings.ToLower(CellString(v)) {
	case "true", "1", "yes", "y":
		return true
	case "false", "0", "no", "n":
		return false
	default:
		return def
	}
}

// BoolCell renders a boolean the way the sheet stores it.
func BoolCell(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// NumOrEmpty converts a request value destined for a numeric cell.
// Empty input stays an empty cell (unset), which is deliberately
// different from the read-side coercion to 0.
func NumOrEmpty(v interface{}) interface{} {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}

	s := CellString(v)
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	return f
}
