package fallback

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
	"warren/finparse/internal/taxonomy"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	registry, err := taxonomy.Defaults()
	require.NoError(t, err)
	return NewClassifier(registry, &logging.MockLogger{})
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestClassifyIsTotal(t *testing.T) {
	c := newClassifier(t)
	registry := taxonomy.MustDefaults()

	// Every non-empty name yields a classification with bounded confidence
	// and a key known to the registry.
	names := []string{
		"Rent", "Sueldos y Salarios", "4010 Product Sales", "xyzzy",
		"插入的行", "a", "   Marketing   ", "€€€", "9999 unknown code",
	}
	for _, name := range names {
		result := c.Classify(name, nil, nil)
		assert.NotEmpty(t, result.Category, "name %q", name)
		assert.GreaterOrEqual(t, result.Confidence, 0, "name %q", name)
		assert.LessOrEqual(t, result.Confidence, 100, "name %q", name)
		_, known := registry.Lookup(result.Category)
		assert.True(t, known, "category %q for name %q must be in the registry", result.Category, name)
	}
}

func TestClassifySpanishSalaries(t *testing.T) {
	c := newClassifier(t)

	result := c.Classify("Sueldos y Salarios", dec(-50000), nil)

	assert.Contains(t, []string{"salaries_wages", "personnel_costs"}, result.Category)
	assert.False(t, result.IsInflow)
	assert.GreaterOrEqual(t, result.Confidence, 70)
	assert.Equal(t, MethodKeyword, result.Method)
}

func TestClassifyKeywordConfidence(t *testing.T) {
	c := newClassifier(t)

	// Exact keyword hit without a value: min(75+score, 95).
	result := c.Classify("Rent", nil, nil)
	assert.Equal(t, "rent_expense", result.Category)
	assert.False(t, result.IsInflow)
	assert.LessOrEqual(t, result.Confidence, 95)
	assert.GreaterOrEqual(t, result.Confidence, 75)
}

func TestClassifyRevenueWithNegativeValue(t *testing.T) {
	c := newClassifier(t)

	result := c.Classify("Sales Revenue", dec(-1200), nil)

	assert.Equal(t, "sales_revenue", result.Category)
	assert.False(t, result.IsInflow, "negative revenue is treated as a contra entry")
	assert.LessOrEqual(t, result.Confidence, 60)
}

func TestClassifyExpenseWithPositiveValue(t *testing.T) {
	c := newClassifier(t)

	result := c.Classify("Rent Expense", dec(3000), nil)

	assert.Equal(t, "rent_expense", result.Category)
	assert.False(t, result.IsInflow)
	assert.LessOrEqual(t, result.Confidence, 65)
}

func TestClassifyNegativeValueNoKeyword(t *testing.T) {
	c := newClassifier(t)

	result := c.Classify("xQ-17 adjustment", dec(-500), nil)

	assert.Equal(t, taxonomy.KeyOtherExpense, result.Category)
	assert.False(t, result.IsInflow)
	assert.Equal(t, 70, result.Confidence)
	assert.Equal(t, MethodValueSign, result.Method)
}

func TestClassifyByAccountCode(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		name       string
		account    string
		category   string
		confidence int
	}{
		{name: "4xxx revenue", account: "4010 Ingresos varios", category: "sales_revenue", confidence: 80},
		{name: "5xxx cost of sales", account: "5200 Materiales", category: "cost_of_sales", confidence: 78},
		{name: "6xxx operating expense", account: "6300 Varios", category: "operating_expense", confidence: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.account, nil, nil)
			assert.Equal(t, tt.category, result.Category)
			assert.Equal(t, tt.confidence, result.Confidence)
			assert.Equal(t, MethodAccountCode, result.Method)
		})
	}
}

func TestClassifyShortCodeIgnored(t *testing.T) {
	c := newClassifier(t)

	// Fewer than four leading digits is not an account code.
	result := c.Classify("401 Mystery", nil, nil)
	assert.NotEqual(t, MethodAccountCode, result.Method)
}

func TestClassifyUltimateDefault(t *testing.T) {
	c := newClassifier(t)

	result := c.Classify("zzqx", dec(100), nil)
	assert.Equal(t, taxonomy.KeyOtherIncome, result.Category)
	assert.True(t, result.IsInflow)
	assert.Equal(t, 40, result.Confidence)
	assert.Equal(t, MethodDefault, result.Method)

	result = c.Classify("zzqx", dec(-100), nil)
	assert.Equal(t, taxonomy.KeyOtherExpense, result.Category)
	assert.False(t, result.IsInflow)
}

func TestClassifyAccentInsensitive(t *testing.T) {
	c := newClassifier(t)

	withAccents := c.Classify("Depreciación", nil, nil)
	withoutAccents := c.Classify("Depreciacion", nil, nil)

	assert.Equal(t, withoutAccents.Category, withAccents.Category)
	assert.Equal(t, "depreciation_amortization", withAccents.Category)
}

func TestClassifyWithStatementContext(t *testing.T) {
	c := newClassifier(t)

	result := c.Classify("Cobros a clientes", dec(8000), &Context{StatementType: models.StatementCashFlow})
	assert.Equal(t, "customer_receipts", result.Category)
	assert.True(t, result.IsInflow)
}
