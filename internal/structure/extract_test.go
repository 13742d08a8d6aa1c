package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warren/finparse/internal/models"
)

func TestExtractAccounts(t *testing.T) {
	rows := sampleTable()
	nameCol := 0
	s := models.DocumentStructure{
		StatementType: models.StatementProfitLoss,
		HeaderRows:    []int{0, 1},
		TotalRows:     []int{6},
		SubtotalRows:  []int{},
		DataStartRow:  2,
		DataEndRow:    6,
		AccountCols:   models.AccountColumns{NameColumn: &nameCol, Confidence: 95},
		PeriodColumns: []models.PeriodColumn{
			{ColumnIndex: 1, PeriodLabel: "Enero", PeriodType: models.PeriodMonth, Confidence: 90},
			{ColumnIndex: 2, PeriodLabel: "Febrero", PeriodType: models.PeriodMonth, Confidence: 90},
		},
	}

	accounts := ExtractAccounts(rows, s)

	// Rows 2, 3, 4, 5 are data; 6 is the total row and is skipped.
	require.Len(t, accounts, 4)

	assert.Equal(t, "Ventas", accounts[0].Name)
	assert.Equal(t, 2, accounts[0].RowIndex)
	require.NotNil(t, accounts[0].Value)
	assert.True(t, accounts[0].Value.Equal(mustDecimal(t, "100000")))
	assert.Equal(t, "100000", accounts[0].RawValue)

	assert.Equal(t, "Costo de Ventas", accounts[1].Name)
	require.NotNil(t, accounts[1].Value)
	assert.True(t, accounts[1].Value.Equal(mustDecimal(t, "-40000")), "parenthesized value reads negative")

	assert.Equal(t, "Gastos Operativos", accounts[2].Name)
	assert.Nil(t, accounts[2].Value, "section rows carry no amount")
}

func TestExtractAccountsSkipsTotalNames(t *testing.T) {
	rows := models.RawTable{
		{"Cuenta", "Monto"},
		{"Ventas", "100"},
		{"Subtotal ingresos", "100"},
		{"Suma total", "100"},
		{"Renta", "-30"},
	}
	s := models.DocumentStructure{
		HeaderRows:   []int{0},
		TotalRows:    []int{},
		SubtotalRows: []int{},
		DataStartRow: 1,
		DataEndRow:   4,
	}

	accounts := ExtractAccounts(rows, s)

	require.Len(t, accounts, 2)
	assert.Equal(t, "Ventas", accounts[0].Name)
	assert.Equal(t, "Renta", accounts[1].Name)
}

func TestExtractAccountsGuessesNameColumn(t *testing.T) {
	// Code in column 0, names in column 1, no nameColumn hint.
	rows := models.RawTable{
		{"Codigo", "Cuenta", "Monto"},
		{"4010", "Ventas", "100"},
		{"6010", "Renta", "-30"},
	}
	s := models.DocumentStructure{
		HeaderRows:   []int{0},
		TotalRows:    []int{},
		SubtotalRows: []int{},
		DataStartRow: 1,
		DataEndRow:   2,
	}

	accounts := ExtractAccounts(rows, s)

	require.Len(t, accounts, 2)
	assert.Equal(t, "Ventas", accounts[0].Name)
	require.NotNil(t, accounts[0].Value)
	assert.True(t, accounts[0].Value.Equal(mustDecimal(t, "100")))
}

func TestExtractAccountsEmptyAfterFallback(t *testing.T) {
	rows := models.RawTable{{"solo encabezado"}}
	s := FallbackStructure(rows)

	accounts := ExtractAccounts(rows, s)
	assert.Empty(t, accounts)
}

func TestExtractAccountsSkipsEmptyNames(t *testing.T) {
	rows := models.RawTable{
		{"Cuenta", "Monto"},
		{"", "50"},
		{nil, "60"},
		{"Ventas", "100"},
	}
	s := models.DocumentStructure{
		HeaderRows:   []int{0},
		TotalRows:    []int{},
		SubtotalRows: []int{},
		DataStartRow: 1,
		DataEndRow:   3,
	}

	accounts := ExtractAccounts(rows, s)

	require.Len(t, accounts, 1)
	assert.Equal(t, "Ventas", accounts[0].Name)
}
