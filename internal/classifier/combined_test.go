package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warren/finparse/internal/models"
)

func combinedTable() models.RawTable {
	return models.RawTable{
		{"Cuenta", "2024"},
		{"Ventas", "100000"},
		{"Renta", "(10000)"},
		{"Total", "90000"},
	}
}

const combinedResponseText = `{
	"structure": {
		"statementType": "profit_loss",
		"confidence": 90,
		"headerRows": [0],
		"totalRows": [3],
		"dataStartRow": 1,
		"dataEndRow": 2,
		"accountColumns": {"nameColumn": 0, "confidence": 90},
		"periodColumns": [{"columnIndex": 1, "periodLabel": "2024", "periodType": "year", "confidence": 90}],
		"currency": "MXN"
	},
	"classifications": [
		{"index": 1, "category": "sales_revenue", "isInflow": true, "confidence": 95, "reasoning": "sales"},
		{"index": 2, "category": "rent_expense", "isInflow": false, "confidence": 90, "reasoning": "rent"}
	]
}`

func TestAnalyzeAndClassifyCombined(t *testing.T) {
	completer := &fakeCompleter{text: combinedResponseText}
	c := newTestClassifier(t, completer)

	s, results, ok := c.AnalyzeAndClassify(context.Background(), combinedTable(), 0, "estado.csv")

	require.True(t, ok)
	assert.Equal(t, 1, completer.calls)
	assert.Equal(t, models.StatementProfitLoss, s.StatementType)
	assert.Equal(t, "MXN", s.Currency)
	assert.Equal(t, 1, s.DataStartRow)
	assert.Equal(t, 2, s.DataEndRow)

	require.Len(t, results, 2)
	assert.Equal(t, "Ventas", results[0].AccountName)
	assert.Equal(t, 1, results[0].RowIndex)
	assert.Equal(t, "sales_revenue", results[0].SuggestedCategory)
	assert.Equal(t, "Renta", results[1].AccountName)
	assert.Equal(t, "rent_expense", results[1].SuggestedCategory)
}

func TestAnalyzeAndClassifyCombinedMissingRow(t *testing.T) {
	// Only the first data row comes back classified.
	completer := &fakeCompleter{text: `{
		"structure": {
			"statementType": "profit_loss",
			"confidence": 90,
			"headerRows": [0],
			"totalRows": [3],
			"dataStartRow": 1,
			"dataEndRow": 2,
			"accountColumns": {"nameColumn": 0, "confidence": 90},
			"currency": "MXN"
		},
		"classifications": [
			{"index": 1, "category": "sales_revenue", "isInflow": true, "confidence": 95}
		]
	}`}
	c := newTestClassifier(t, completer)

	_, results, ok := c.AnalyzeAndClassify(context.Background(), combinedTable(), 0, "")

	require.True(t, ok)
	require.Len(t, results, 2)
	assert.Equal(t, "sales_revenue", results[0].SuggestedCategory)
	assert.Contains(t, results[1].Reasoning, "not present in AI response")
}

func TestAnalyzeAndClassifyCombinedServiceFailure(t *testing.T) {
	completer := &fakeCompleter{err: context.DeadlineExceeded}
	c := newTestClassifier(t, completer)

	_, results, ok := c.AnalyzeAndClassify(context.Background(), combinedTable(), 0, "")

	assert.False(t, ok, "the caller falls back to the separate path")
	assert.Nil(t, results)
}

func TestAnalyzeAndClassifyCombinedUnparseable(t *testing.T) {
	completer := &fakeCompleter{text: "I cannot help with that."}
	c := newTestClassifier(t, completer)

	_, _, ok := c.AnalyzeAndClassify(context.Background(), combinedTable(), 0, "")

	assert.False(t, ok)
}
