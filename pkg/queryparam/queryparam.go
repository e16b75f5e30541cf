// Package queryparam parses query string values permissively. Every parser is
// total: bad input yields the caller's default and a flag saying so, never an
// error.
package queryparam

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	intPrefix     = regexp.MustCompile(`^\s*[+-]?\d+`)
	decimalPrefix = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)`)
)

// Int parses the leading integer of raw ("12abc" is 12). When raw has no
// leading digits, or the number overflows, it returns def and true.
func Int(raw string, def int) (int, bool) {
	m := intPrefix.FindString(raw)
	if m == "" {
		return def, true
	}
	v, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return def, true
	}
	return v, false
}

// Int64 is Int for identifiers.
func Int64(raw string, def int64) (int64, bool) {
	m := intPrefix.FindString(raw)
	if m == "" {
		return def, true
	}
	v, err := strconv.ParseInt(strings.TrimSpace(m), 10, 64)
	if err != nil {
		return def, true
	}
	return v, false
}

// Decimal parses the leading decimal number of raw ("19.99EUR" is 19.99).
// When raw has no leading number it returns def and true.
func Decimal(raw string, def decimal.Decimal) (decimal.Decimal, bool) {
	m := decimalPrefix.FindString(raw)
	if m == "" {
		return def, true
	}
	v, err := decimal.NewFromString(strings.TrimSpace(m))
	if err != nil {
		return def, true
	}
	return v, false
}

// Flag reports whether raw is literally "true". Anything else, including
// "TRUE" and "1", is false.
func Flag(raw string) bool {
	return raw == "true"
}
