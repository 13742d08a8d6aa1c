package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0, ClampConfidence(-10))
	assert.Equal(t, 0, ClampConfidence(0))
	assert.Equal(t, 85, ClampConfidence(85))
	assert.Equal(t, 100, ClampConfidence(250))
}

func TestValidStatementType(t *testing.T) {
	assert.True(t, ValidStatementType(StatementProfitLoss))
	assert.True(t, ValidStatementType(StatementBalanceSheet))
	assert.True(t, ValidStatementType(StatementCashFlow))
	assert.True(t, ValidStatementType(StatementUnknown))
	assert.False(t, ValidStatementType(StatementType("income_statement")))
	assert.False(t, ValidStatementType(StatementType("")))
}

func TestIsHeaderAndTotalRows(t *testing.T) {
	s := DocumentStructure{
		HeaderRows:   []int{0, 1},
		TotalRows:    []int{9},
		SubtotalRows: []int{5},
	}

	assert.True(t, s.IsHeaderRow(0))
	assert.True(t, s.IsHeaderRow(1))
	assert.False(t, s.IsHeaderRow(2))

	assert.True(t, s.IsTotalRow(9))
	assert.True(t, s.IsTotalRow(5), "subtotal rows count as total rows")
	assert.False(t, s.IsTotalRow(3))
}

func TestRawTableShape(t *testing.T) {
	table := RawTable{
		{"Account", "Jan", "Feb"},
		{"Sales", 100.0},
		{},
	}

	assert.Equal(t, 3, table.RowCount())
	assert.Equal(t, 3, table.ColumnCount())
	assert.Equal(t, "Sales", CellString(table.Cell(1, 0)))
	assert.Nil(t, table.Cell(1, 2), "ragged row reads as nil")
	assert.Nil(t, table.Cell(7, 0), "out of bounds reads as nil")
}
