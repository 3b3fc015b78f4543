package substitute

import (
	"strings"
	"unicode"

	"github.com/pluqqy/adaptergen/pkg/models"
)

// NotANumber is substituted for numeric input with no leading digits
const NotANumber = "NaN"

// FieldValueSource reads current form state by field name
type FieldValueSource interface {
	Boolean(name string) bool
	Text(name string) string
}

// Convert reads the value of desc from source and returns its substitution
// text
func Convert(desc models.FieldDescriptor, source FieldValueSource) string {
	switch desc.Kind {
	case models.KindBoolean:
		return FormatBoolean(source.Boolean(desc.Name))
	case models.KindNumber:
		n, _ := ParseInteger(source.Text(desc.Name))
		return n
	default:
		return source.Text(desc.Name)
	}
}

// FormatBoolean renders a checked-state as the digit 1 or 0
func FormatBoolean(checked bool) string {
	if checked {
		return "1"
	}
	return "0"
}

// ParseInteger reads a base-10 integer prefix from raw the way a browser's
// parseInt(raw, 10) does: leading whitespace is skipped, one sign is
// accepted and parsing stops at the first non-digit. The result is the
// canonical decimal form. ok is false, and the result NotANumber, when no
// digit was read.
func ParseInteger(raw string) (value string, ok bool) {
	s := strings.TrimLeftFunc(raw, isScriptSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return NotANumber, false
	}

	digits := strings.TrimLeft(s[:end], "0")
	if digits == "" {
		return "0", true
	}
	if negative {
		return "-" + digits, true
	}
	return digits, true
}

// IsInteger reports whether raw is entirely an integer, allowing
// surrounding whitespace
func IsInteger(raw string) bool {
	s := strings.TrimFunc(raw, isScriptSpace)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isScriptSpace matches the whitespace parseInt skips: Unicode spaces and
// line terminators plus the byte order mark, but not NEL
func isScriptSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
