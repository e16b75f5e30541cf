// Package price turns loosely formatted price values into numbers.
package price

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Normalize converts v to a float64 price.
//
// Numbers pass through. Strings are cleaned: whitespace and the euro sign are
// dropped, then everything except digits, ',', '.' and '-'. A comma followed
// by exactly three digits is a thousands separator and is removed. If a comma
// is still left it is the decimal separator: periods are then grouping marks
// and are removed, and the comma becomes a period. Anything else (nil, bools,
// unparsable or non-finite values) normalizes to 0.
func Normalize(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case decimal.Decimal:
		return n.InexactFloat64()
	case json.Number:
		return parse(n.String())
	case string:
		return parse(clean(n))
	case *string:
		if n == nil {
			return 0
		}
		return parse(clean(*n))
	default:
		return 0
	}
}

func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '€' {
			continue
		}
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	s = dropThousandsCommas(b.String())

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}

// dropThousandsCommas removes every comma followed by exactly three digits
// and then a non-digit or the end of the string.
func dropThousandsCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ',' && i+4 <= len(s) && isDigits(s[i+1:i+4]) && (i+4 == len(s) || !isDigit(s[i+4])) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func parse(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
