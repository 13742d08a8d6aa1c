// Package models provides the data structures shared by the statement
// understanding pipeline: raw spreadsheet tables, document structure,
// extracted accounts, classifications and validation results.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RawRow is one row of cell values extracted from a spreadsheet.
// Cells are string, float64, int, decimal.Decimal or nil; the pipeline
// never assumes a uniform cell type.
type RawRow []interface{}

// RawTable is an ordered sequence of rows with a fixed column count.
type RawTable []RawRow

// RowCount returns the number of rows in the table.
func (t RawTable) RowCount() int {
	return len(t)
}

// ColumnCount returns the widest row of the table. Spreadsheet exports are
// often ragged, so callers must treat this as an upper bound per row.
func (t RawTable) ColumnCount() int {
	max := 0
	for _, row := range t {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// CellString returns the trimmed string form of a cell, or "" for nil cells.
func CellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	switch v := cell.(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// CellAmount attempts to read a cell as a monetary amount. It accepts
// native numeric cells as well as formatted strings ("1,234.56", "(500)",
// "$1 200.50"). The second return is false when the cell holds no number.
func CellAmount(cell interface{}) (decimal.Decimal, bool) {
	if cell == nil {
		return decimal.Zero, false
	}
	switch v := cell.(type) {
	case decimal.Decimal:
		return v, true
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		return ParseAmount(v)
	default:
		return decimal.Zero, false
	}
}

// Cell returns the cell at (row, col), or nil when out of bounds.
func (t RawTable) Cell(row, col int) interface{} {
	if row < 0 || row >= len(t) {
		return nil
	}
	if col < 0 || col >= len(t[row]) {
		return nil
	}
	return t[row][col]
}
