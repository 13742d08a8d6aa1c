package validation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warren/finparse/internal/config"
	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
	"warren/finparse/internal/taxonomy"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	registry, err := taxonomy.Defaults()
	require.NoError(t, err)
	return NewEngine(config.DefaultValidationConfig(), registry, &logging.MockLogger{})
}

func amount(v string) *decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return &d
}

func plCtx() Context {
	return Context{DocumentType: models.StatementProfitLoss, Language: "es"}
}

func row(idx int, name, category string, v *decimal.Decimal) models.AccountClassification {
	return models.AccountClassification{
		AccountName:       name,
		RowIndex:          idx,
		Amount:            v,
		SuggestedCategory: category,
		Confidence:        90,
	}
}

func inflowRow(idx int, name, category string, v *decimal.Decimal) models.AccountClassification {
	r := row(idx, name, category, v)
	r.IsInflow = true
	return r
}

func TestValidateTotalKeywordMarksRow(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		inflowRow(0, "Total Revenue", "sales_revenue", amount("100000")),
	}

	out := e.Validate(batch, plCtx())

	require.Len(t, out.Validation.Corrections, 1)
	assert.Equal(t, models.FieldIsTotal, out.Validation.Corrections[0].Field)
	assert.Equal(t, true, out.Validation.Corrections[0].CorrectedValue)
	assert.True(t, out.Results[0].IsTotal, "correction is applied to the batch")
}

func TestValidateTotalFlagWithoutKeywordCleared(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		inflowRow(0, "Consulting Fees", "service_revenue", amount("5000")),
	}
	batch[0].IsTotal = true

	out := e.Validate(batch, plCtx())

	require.Len(t, out.Validation.Corrections, 1)
	assert.Equal(t, false, out.Validation.Corrections[0].CorrectedValue)
	assert.False(t, out.Results[0].IsTotal)
}

func TestValidateTotalKeywordDiscriminates(t *testing.T) {
	// "Other Revenue" contains no total word and must stay a data row.
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		inflowRow(0, "Total Revenue", "sales_revenue", amount("100000")),
		inflowRow(1, "Other Revenue", "interest_income", amount("5000")),
	}

	out := e.Validate(batch, plCtx())

	assert.True(t, out.Results[0].IsTotal)
	assert.False(t, out.Results[1].IsTotal)
}

func TestValidateHeaderWithAmountDemoted(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		row(0, "Gastos de operación", "other_expense", amount("200")),
	}
	batch[0].IsSectionHeader = true

	out := e.Validate(batch, plCtx())

	assert.False(t, out.Results[0].IsSectionHeader)
	found := false
	for _, w := range out.Validation.Warnings {
		if w.Field == models.FieldIsSectionHeader && w.Severity == models.SeverityMedium {
			found = true
		}
	}
	assert.True(t, found, "demotion leaves a medium warning")
}

func TestValidateBareTopLevelTermPromotedToHeader(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		row(0, "Ingresos", "sales_revenue", nil),
	}

	out := e.Validate(batch, plCtx())

	assert.True(t, out.Results[0].IsSectionHeader)
}

func TestValidateGenericCategorySharpened(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		row(0, "Renta de oficina", "other_expense", amount("-12000")),
	}

	out := e.Validate(batch, plCtx())

	assert.Equal(t, "rent_expense", out.Results[0].SuggestedCategory)
	require.Len(t, out.Validation.Corrections, 1)
	assert.Equal(t, models.FieldClassification, out.Validation.Corrections[0].Field)
}

func TestValidateGenericCategoryKeptWithWarning(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		row(0, "Partidas varias", "other_expense", amount("-300")),
	}

	out := e.Validate(batch, plCtx())

	assert.Equal(t, "other_expense", out.Results[0].SuggestedCategory)
	assert.Empty(t, out.Validation.Corrections)
	require.Len(t, out.Validation.Warnings, 1)
	assert.Equal(t, models.FieldClassification, out.Validation.Warnings[0].Field)
}

func TestValidatePolarityRevenueNegativeWarns(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		row(0, "Product Sales", "sales_revenue", amount("-5000")),
	}

	out := e.Validate(batch, plCtx())

	assert.Empty(t, out.Validation.Corrections, "negative revenue is flagged, never auto-flipped")
	require.Len(t, out.Validation.Warnings, 1)
	assert.Equal(t, models.SeverityHigh, out.Validation.Warnings[0].Severity)
}

func TestValidatePolarityRevenueOutflowCorrected(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		row(0, "Product Sales", "sales_revenue", amount("5000")),
	}

	out := e.Validate(batch, plCtx())

	assert.True(t, out.Results[0].IsInflow, "revenue rows end up as inflows")
	require.Len(t, out.Validation.Corrections, 1)
	assert.Equal(t, models.FieldIsInflow, out.Validation.Corrections[0].Field)
	assert.Equal(t, true, out.Validation.Corrections[0].CorrectedValue)
	assert.InDelta(t, 0.9+config.DefaultPenaltyPolarityFix, out.Validation.Confidence, 0.001)
}

func TestValidatePolarityExpenseInflowCorrected(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		row(0, "Renta", "rent_expense", amount("-12000")),
	}
	batch[0].IsInflow = true

	out := e.Validate(batch, plCtx())

	assert.False(t, out.Results[0].IsInflow)
	require.Len(t, out.Validation.Corrections, 1)
	assert.Equal(t, models.FieldIsInflow, out.Validation.Corrections[0].Field)
}

func TestValidateCashFlowWordingOverridesPolarity(t *testing.T) {
	e := newTestEngine(t)
	ctx := Context{DocumentType: models.StatementCashFlow}
	batch := []models.AccountClassification{
		row(0, "Cobros a clientes", "customer_receipts", amount("50000")),
		row(1, "Pagos a proveedores", "supplier_payments", amount("-30000")),
	}
	batch[1].IsInflow = true

	out := e.Validate(batch, ctx)

	assert.True(t, out.Results[0].IsInflow)
	assert.False(t, out.Results[1].IsInflow)
	assert.Len(t, out.Validation.Corrections, 2)
}

func TestValidateIdempotent(t *testing.T) {
	// A second pass over an already corrected batch changes nothing.
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		row(0, "Total Revenue", "sales_revenue", amount("100000")),
		row(1, "Renta de oficina", "other_expense", amount("-12000")),
	}
	batch[1].IsInflow = true

	first := e.Validate(batch, plCtx())
	require.NotEmpty(t, first.Validation.Corrections)

	second := e.Validate(first.Results, plCtx())

	assert.Empty(t, second.Validation.Corrections)
	assert.Equal(t, first.Results, second.Results)
}

func TestValidateNumericSanity(t *testing.T) {
	e := newTestEngine(t)
	pct := row(1, "Margen bruto %", "gross_profit", amount("140"))
	pct.IsPercentage = true
	batch := []models.AccountClassification{
		row(0, "Ventas", "sales_revenue", amount("5000000000000")),
		pct,
		row(2, "Comisiones bancarias", "interest_expense", amount("0.4")),
	}

	out := e.Validate(batch, plCtx())

	severities := map[int]models.Severity{}
	for _, w := range out.Validation.Warnings {
		if w.Field == models.FieldAmount {
			severities[w.RowIndex] = w.Severity
		}
	}
	assert.Equal(t, models.SeverityHigh, severities[0], "magnitude above 1e12")
	assert.Equal(t, models.SeverityMedium, severities[1], "percentage above 100")
	assert.Equal(t, models.SeverityLow, severities[2], "magnitude below 1")
}

func TestValidateHierarchyMismatch(t *testing.T) {
	e := newTestEngine(t)
	total := row(2, "Total ingresos", "sales_revenue", amount("100"))
	total.IsTotal = true
	total.ParentAccount = "Ingresos"
	childA := row(0, "Ventas", "sales_revenue", amount("60"))
	childA.ParentAccount = "Ingresos"
	childB := row(1, "Servicios", "service_revenue", amount("30"))
	childB.ParentAccount = "Ingresos"

	out := e.Validate([]models.AccountClassification{childA, childB, total}, plCtx())

	var hierarchy []models.Warning
	for _, w := range out.Validation.Warnings {
		if w.Field == models.FieldHierarchy {
			hierarchy = append(hierarchy, w)
		}
	}
	require.Len(t, hierarchy, 1)
	assert.Equal(t, models.SeverityHigh, hierarchy[0].Severity)
	assert.Contains(t, hierarchy[0].Message, "difference 10")
}

func TestValidateHierarchyWithinTolerance(t *testing.T) {
	e := newTestEngine(t)
	total := row(2, "Total ingresos", "sales_revenue", amount("100.00"))
	total.IsTotal = true
	total.ParentAccount = "Ingresos"
	child := row(0, "Ventas", "sales_revenue", amount("99.995"))
	child.ParentAccount = "Ingresos"

	out := e.Validate([]models.AccountClassification{child, total}, plCtx())

	for _, w := range out.Validation.Warnings {
		assert.NotEqual(t, models.FieldHierarchy, w.Field)
	}
}

func TestValidateEmptyBatch(t *testing.T) {
	e := newTestEngine(t)

	out := e.Validate(nil, plCtx())

	assert.Empty(t, out.Validation.Corrections)
	assert.Empty(t, out.Validation.Warnings)
	assert.Equal(t, 1.0, out.Validation.Confidence)
	assert.False(t, out.Validation.RequiresManualReview)
}

func TestValidateSkipsBlankRows(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		{RowIndex: 0},
		inflowRow(1, "Ventas", "sales_revenue", amount("100")),
	}

	out := e.Validate(batch, plCtx())

	assert.Empty(t, out.Validation.Corrections)
}

func TestValidateManyCorrectionsRequireReview(t *testing.T) {
	e := newTestEngine(t)
	var batch []models.AccountClassification
	for i := 0; i < 12; i++ {
		r := row(i, fmt.Sprintf("Account %d", i), "rent_expense", amount("-100"))
		r.IsInflow = true
		batch = append(batch, r)
	}

	out := e.Validate(batch, plCtx())

	assert.Greater(t, len(out.Validation.Corrections), config.DefaultMaxCorrections)
	assert.True(t, out.Validation.RequiresManualReview)
}

func TestValidateCleanBatchNeedsNoReview(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		row(0, "Ventas", "sales_revenue", amount("100000")),
		row(1, "Renta", "rent_expense", amount("-12000")),
	}
	batch[0].IsInflow = true

	out := e.Validate(batch, plCtx())

	assert.Empty(t, out.Validation.Corrections)
	assert.False(t, out.Validation.RequiresManualReview)
	assert.InDelta(t, 0.9, out.Validation.Confidence, 0.001)
}

func TestValidatePenaltyLowersConfidence(t *testing.T) {
	e := newTestEngine(t)
	batch := []models.AccountClassification{
		inflowRow(0, "Total Revenue", "sales_revenue", amount("100000")),
	}

	out := e.Validate(batch, plCtx())

	assert.InDelta(t, 0.9+config.DefaultPenaltyTotalMarked, out.Validation.Confidence, 0.001)
}
