package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warren/finparse/internal/config"
	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
	"warren/finparse/internal/taxonomy"
)

type fakeCompleter struct {
	responses []string
	err       error
	calls     int
}

func (f *fakeCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("no scripted response left")
	}
	text := f.responses[0]
	f.responses = f.responses[1:]
	return text, nil
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.Validation = config.DefaultValidationConfig()
	return cfg
}

func testTable() models.RawTable {
	return models.RawTable{
		{"Cuenta", "2024"},
		{"Ventas", "100000"},
		{"Renta", "(10000)"},
		{"Total", "90000"},
	}
}

const structureResponse = `{
	"statementType": "profit_loss",
	"confidence": 90,
	"headerRows": [0],
	"totalRows": [3],
	"dataStartRow": 1,
	"dataEndRow": 2,
	"accountColumns": {"nameColumn": 0, "confidence": 90},
	"currency": "MXN"
}`

const classificationResponse = `{"classifications": [
	{"index": 0, "category": "sales_revenue", "isInflow": true, "confidence": 95, "reasoning": "sales"},
	{"index": 1, "category": "rent_expense", "isInflow": false, "confidence": 90, "reasoning": "rent"}
]}`

func TestRunSeparatePath(t *testing.T) {
	registry, err := taxonomy.Defaults()
	require.NoError(t, err)
	completer := &fakeCompleter{responses: []string{structureResponse, classificationResponse}}

	p := New(completer, registry, testConfig(), &logging.MockLogger{})
	result := p.Run(context.Background(), testTable(), "estado.csv")

	assert.Equal(t, 2, completer.calls, "one structure call, one classification call")
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, "estado.csv", result.FileName)
	assert.Equal(t, models.StatementProfitLoss, result.Structure.StatementType)

	require.Len(t, result.Classifications, 2)
	assert.Equal(t, "sales_revenue", result.Classifications[0].SuggestedCategory)
	assert.Equal(t, "rent_expense", result.Classifications[1].SuggestedCategory)
	assert.False(t, result.Validation.RequiresManualReview)
	assert.Greater(t, result.Validation.Confidence, 0.8)
}

func TestRunCombinedPath(t *testing.T) {
	registry, err := taxonomy.Defaults()
	require.NoError(t, err)
	combined := `{
		"structure": ` + structureResponse + `,
		"classifications": [
			{"index": 1, "category": "sales_revenue", "isInflow": true, "confidence": 95},
			{"index": 2, "category": "rent_expense", "isInflow": false, "confidence": 90}
		]
	}`
	completer := &fakeCompleter{responses: []string{combined}}
	cfg := testConfig()
	cfg.AI.CombinedAnalysis = true

	p := New(completer, registry, cfg, &logging.MockLogger{})
	result := p.Run(context.Background(), testTable(), "")

	assert.Equal(t, 1, completer.calls, "combined mode makes a single call")
	require.Len(t, result.Classifications, 2)
	assert.Equal(t, "sales_revenue", result.Classifications[0].SuggestedCategory)
}

func TestRunCombinedFallsBackToSeparatePath(t *testing.T) {
	registry, err := taxonomy.Defaults()
	require.NoError(t, err)
	completer := &fakeCompleter{responses: []string{
		"garbage", structureResponse, classificationResponse,
	}}
	cfg := testConfig()
	cfg.AI.CombinedAnalysis = true

	p := New(completer, registry, cfg, &logging.MockLogger{})
	result := p.Run(context.Background(), testTable(), "")

	assert.Equal(t, 3, completer.calls)
	require.Len(t, result.Classifications, 2)
	assert.Equal(t, "sales_revenue", result.Classifications[0].SuggestedCategory)
}

func TestRunFullyLocal(t *testing.T) {
	// No completer at all: the run still produces a complete result
	// through the fallback structure and the local classifier.
	registry, err := taxonomy.Defaults()
	require.NoError(t, err)

	p := New(nil, registry, testConfig(), &logging.MockLogger{})
	result := p.Run(context.Background(), testTable(), "estado.csv")

	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, models.StatementUnknown, result.Structure.StatementType)
	require.NotEmpty(t, result.Classifications)
	for _, c := range result.Classifications {
		assert.NotEmpty(t, c.SuggestedCategory)
		assert.Contains(t, c.Reasoning, "AI service unavailable")
	}
}

func TestRunServiceFailure(t *testing.T) {
	registry, err := taxonomy.Defaults()
	require.NoError(t, err)
	completer := &fakeCompleter{err: errors.New("quota exhausted")}

	p := New(completer, registry, testConfig(), &logging.MockLogger{})
	result := p.Run(context.Background(), testTable(), "")

	require.NotEmpty(t, result.Classifications)
	assert.Equal(t, 30, result.Structure.Confidence, "fallback structure confidence")
}

func TestRunEmptyTable(t *testing.T) {
	registry, err := taxonomy.Defaults()
	require.NoError(t, err)

	p := New(nil, registry, testConfig(), &logging.MockLogger{})
	result := p.Run(context.Background(), nil, "")

	assert.NotEmpty(t, result.BatchID)
	assert.Empty(t, result.Classifications)
	assert.Equal(t, 1.0, result.Validation.Confidence)
}

func TestRunBatchIDsAreUnique(t *testing.T) {
	registry, err := taxonomy.Defaults()
	require.NoError(t, err)
	p := New(nil, registry, testConfig(), &logging.MockLogger{})

	a := p.Run(context.Background(), testTable(), "")
	b := p.Run(context.Background(), testTable(), "")

	assert.NotEqual(t, a.BatchID, b.BatchID)
}
