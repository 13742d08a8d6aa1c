package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{name: "Plain integer", raw: "500", expected: "500", ok: true},
		{name: "Decimal point", raw: "1234.56", expected: "1234.56", ok: true},
		{name: "US thousands separators", raw: "1,234.56", expected: "1234.56", ok: true},
		{name: "European separators", raw: "1.234,56", expected: "1234.56", ok: true},
		{name: "Parenthesized negative", raw: "(500)", expected: "-500", ok: true},
		{name: "Parenthesized with separators", raw: "(1,234.56)", expected: "-1234.56", ok: true},
		{name: "Leading minus", raw: "-42.5", expected: "-42.5", ok: true},
		{name: "Dollar sign", raw: "$1200.50", expected: "1200.50", ok: true},
		{name: "Euro sign with space", raw: "€ 1 200,50", expected: "1200.50", ok: true},
		{name: "Whitespace padding", raw: "  99  ", expected: "99", ok: true},
		{name: "Empty string", raw: "", ok: false},
		{name: "Pure text", raw: "Operating Expenses", ok: false},
		{name: "Dash placeholder", raw: "-", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := ParseAmount(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, amount.Equal(mustDecimal(t, tt.expected)),
					"expected %s, got %s", tt.expected, amount)
			}
		})
	}
}

func TestCellAmount(t *testing.T) {
	tests := []struct {
		name     string
		cell     interface{}
		expected string
		ok       bool
	}{
		{name: "Float cell", cell: 1234.5, expected: "1234.5", ok: true},
		{name: "Int cell", cell: 42, expected: "42", ok: true},
		{name: "String amount", cell: "(300)", expected: "-300", ok: true},
		{name: "Nil cell", cell: nil, ok: false},
		{name: "Text cell", cell: "Revenue", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := CellAmount(tt.cell)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, amount.Equal(mustDecimal(t, tt.expected)),
					"expected %s, got %s", tt.expected, amount)
			}
		})
	}
}
