package price

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_Strings(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"€1.234,56", 1234.56},
		{"19,99", 19.99},
		{"19.99", 19.99},
		{"129.95 €", 129.95},
		{"€ 89,00", 89},
		{"1,234", 1234},
		{"1,234.50", 1234.5},
		{"1,234,567", 1234567},
		{"1.234.567,89", 1234567.89},
		{"-3,5", -3.5},
		{"EUR 42", 42},
		{"abc", 0},
		{"", 0},
		{"   ", 0},
		{"-", 0},
		{"1,2,3", 0},
		{"1.2.3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.want, Normalize(tt.input), 1e-9)
		})
	}
}

func TestNormalize_Numbers(t *testing.T) {
	assert.Equal(t, 42.0, Normalize(42))
	assert.Equal(t, 42.0, Normalize(int64(42)))
	assert.Equal(t, 19.99, Normalize(19.99))
	assert.InDelta(t, 2.5, Normalize(float32(2.5)), 1e-9)
	assert.Equal(t, 12.34, Normalize(decimal.RequireFromString("12.34")))
	assert.Equal(t, 7.5, Normalize(json.Number("7.5")))
}

func TestNormalize_NonFinite(t *testing.T) {
	assert.Equal(t, 0.0, Normalize(math.NaN()))
	assert.Equal(t, 0.0, Normalize(math.Inf(1)))
}

func TestNormalize_OtherTypes(t *testing.T) {
	var nilStr *string
	s := "9,90"

	assert.Equal(t, 0.0, Normalize(nil))
	assert.Equal(t, 0.0, Normalize(true))
	assert.Equal(t, 0.0, Normalize([]byte("12")))
	assert.Equal(t, 0.0, Normalize(nilStr))
	assert.Equal(t, 9.9, Normalize(&s))
}
