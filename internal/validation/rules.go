package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"warren/finparse/internal/models"
	"warren/finparse/internal/taxonomy"
)

// totalKeywords mark aggregate rows, in English and Spanish. A row
// claiming to be a total without any of these words is suspect.
var totalKeywords = []string{"total", "subtotal", "suma", "grand total", "totales"}

// topLevelTerms are statement section names. A row equal to or prefixed
// by one of these, with no amount, is a section header.
var topLevelTerms = []string{
	"revenue", "revenues", "income", "expenses", "operating expenses",
	"cost of sales", "assets", "liabilities",
	"ingresos", "gastos", "egresos", "costos", "activos", "pasivos",
}

// genericKeys is the deny-list of categories too vague to report on.
var genericKeys = map[string]bool{
	taxonomy.KeyOtherRevenue:  true,
	taxonomy.KeyOtherIncome:   true,
	taxonomy.KeyOtherExpense:  true,
	taxonomy.KeyMiscellaneous: true,
	taxonomy.KeyUncategorized: true,
}

// sharpenRule maps account-name substrings to a more specific category.
type sharpenRule struct {
	substrings []string
	category   string
}

var sharpenRules = []sharpenRule{
	{[]string{"service", "servicio"}, "service_revenue"},
	{[]string{"sales", "ventas"}, "sales_revenue"},
	{[]string{"salary", "salaries", "wage", "payroll", "sueldo", "salario", "nomina", "nómina"}, "personnel_costs"},
	{[]string{"rent", "lease", "renta", "alquiler"}, "rent_expense"},
	{[]string{"marketing", "advertis", "publicidad"}, "marketing_expense"},
	{[]string{"insurance", "seguro"}, "insurance_expense"},
	{[]string{"travel", "viaje", "viatico", "viático"}, "travel_expense"},
	{[]string{"utilit", "electric", "luz", "agua"}, "utilities_expense"},
	{[]string{"legal", "consult", "professional", "honorarios"}, "professional_services"},
	{[]string{"office", "supplies", "oficina", "papeleria", "papelería"}, "office_supplies"},
	{[]string{"depreciation", "amortiz", "depreciacion", "depreciación"}, "depreciation_amortization"},
	{[]string{"tax", "impuesto"}, "tax_expense"},
}

// inflowTerms and outflowTerms drive the cash-flow polarity rule.
var inflowTerms = []string{"receipt", "collection", "cobro", "cobranza", "recaudacion", "recaudación"}
var outflowTerms = []string{"payment", "disbursement", "pago", "desembolso"}

func containsAny(name string, terms []string) bool {
	lower := strings.ToLower(name)
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// checkTotalRow reconciles the isTotal flag with the account text. The
// flag is only believable when the text actually says total.
func (e *Engine) checkTotalRow(row models.AccountClassification) ([]models.Correction, []models.Warning, float64) {
	hasKeyword := containsAny(row.AccountName, totalKeywords)

	if row.IsTotal && !hasKeyword {
		return []models.Correction{{
			RowIndex:       row.RowIndex,
			Field:          models.FieldIsTotal,
			OriginalValue:  true,
			CorrectedValue: false,
			Reason:         "marked as total but the account text contains no total keyword",
		}}, nil, e.cfg.PenaltyTotalUnmarked
	}

	if !row.IsTotal && hasKeyword && row.HasAmount() {
		return []models.Correction{{
			RowIndex:       row.RowIndex,
			Field:          models.FieldIsTotal,
			OriginalValue:  false,
			CorrectedValue: true,
			Reason:         "account text contains a total keyword and carries an amount",
		}}, nil, e.cfg.PenaltyTotalMarked
	}

	return nil, nil, 0
}

// checkSectionHeader enforces that headers carry no value, and promotes
// bare top-level terms without an amount to headers.
func (e *Engine) checkSectionHeader(row models.AccountClassification) ([]models.Correction, []models.Warning, float64) {
	if row.IsSectionHeader && row.HasAmount() {
		return []models.Correction{{
				RowIndex:       row.RowIndex,
				Field:          models.FieldIsSectionHeader,
				OriginalValue:  true,
				CorrectedValue: false,
				Reason:         "section headers must not carry an amount",
			}}, []models.Warning{{
				RowIndex: row.RowIndex,
				Field:    models.FieldIsSectionHeader,
				Message:  fmt.Sprintf("%q was marked as a section header but carries an amount", row.AccountName),
				Severity: models.SeverityMedium,
			}}, e.cfg.PenaltyHeaderFix
	}

	if !row.IsSectionHeader && !row.HasAmount() && isTopLevelTerm(row.AccountName) {
		return []models.Correction{{
			RowIndex:       row.RowIndex,
			Field:          models.FieldIsSectionHeader,
			OriginalValue:  false,
			CorrectedValue: true,
			Reason:         "top-level statement term without an amount is a section header",
		}}, nil, e.cfg.PenaltyHeaderFix
	}

	return nil, nil, 0
}

func isTopLevelTerm(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, t := range topLevelTerms {
		if lower == t || strings.HasPrefix(lower, t+" ") || strings.HasPrefix(lower, t+":") {
			return true
		}
	}
	return false
}

// checkGenericCategory tries to sharpen an overly generic category from
// the account name. When nothing sharper matches, the generic key stays
// but is flagged for a human.
func (e *Engine) checkGenericCategory(row models.AccountClassification) ([]models.Correction, []models.Warning, float64) {
	if !genericKeys[row.SuggestedCategory] {
		return nil, nil, 0
	}

	lower := strings.ToLower(row.AccountName)
	for _, rule := range sharpenRules {
		for _, sub := range rule.substrings {
			if !strings.Contains(lower, sub) {
				continue
			}
			if _, ok := e.registry.Lookup(rule.category); !ok {
				continue
			}
			return []models.Correction{{
				RowIndex:       row.RowIndex,
				Field:          models.FieldClassification,
				OriginalValue:  row.SuggestedCategory,
				CorrectedValue: rule.category,
				Reason:         fmt.Sprintf("account name matches %q, sharper than %s", sub, row.SuggestedCategory),
			}}, nil, e.cfg.PenaltyGenericImproved
		}
	}

	return nil, []models.Warning{{
		RowIndex: row.RowIndex,
		Field:    models.FieldClassification,
		Message:  fmt.Sprintf("%q kept generic category %s", row.AccountName, row.SuggestedCategory),
		Severity: models.SeverityMedium,
	}}, 0
}

// checkPolarity enforces inflow/outflow consistency. Profit and loss:
// revenue rows should not be negative, expense rows are never inflows.
// Cash flow: receipt and payment wording overrides the classifier.
func (e *Engine) checkPolarity(row models.AccountClassification, vctx Context) ([]models.Correction, []models.Warning, float64) {
	switch vctx.DocumentType {
	case models.StatementProfitLoss:
		def, known := e.registry.Lookup(row.SuggestedCategory)
		if !known {
			return nil, nil, 0
		}
		if def.IsInflow && row.Amount != nil && row.Amount.IsNegative() {
			return nil, []models.Warning{{
				RowIndex: row.RowIndex,
				Field:    models.FieldAmount,
				Message:  fmt.Sprintf("%q is classified as revenue but its amount is negative", row.AccountName),
				Severity: models.SeverityHigh,
			}}, 0
		}
		if def.IsInflow && !row.IsInflow {
			return []models.Correction{{
				RowIndex:       row.RowIndex,
				Field:          models.FieldIsInflow,
				OriginalValue:  false,
				CorrectedValue: true,
				Reason:         fmt.Sprintf("category %s is an inflow", row.SuggestedCategory),
			}}, nil, e.cfg.PenaltyPolarityFix
		}
		if !def.IsInflow && row.IsInflow {
			return []models.Correction{{
				RowIndex:       row.RowIndex,
				Field:          models.FieldIsInflow,
				OriginalValue:  true,
				CorrectedValue: false,
				Reason:         fmt.Sprintf("category %s is an outflow", row.SuggestedCategory),
			}}, nil, e.cfg.PenaltyPolarityFix
		}

	case models.StatementCashFlow:
		if containsAny(row.AccountName, inflowTerms) && !row.IsInflow {
			return []models.Correction{{
				RowIndex:       row.RowIndex,
				Field:          models.FieldIsInflow,
				OriginalValue:  false,
				CorrectedValue: true,
				Reason:         "receipt or collection wording implies an inflow",
			}}, nil, e.cfg.PenaltyPolarityFix
		}
		if containsAny(row.AccountName, outflowTerms) && row.IsInflow {
			return []models.Correction{{
				RowIndex:       row.RowIndex,
				Field:          models.FieldIsInflow,
				OriginalValue:  true,
				CorrectedValue: false,
				Reason:         "payment or disbursement wording implies an outflow",
			}}, nil, e.cfg.PenaltyPolarityFix
		}
	}

	return nil, nil, 0
}

var magnitudeCeiling = decimal.New(1, 12) // 1e12

// checkNumericSanity flags magnitudes that are almost certainly unit or
// entry errors. Warnings only, never corrected.
func checkNumericSanity(row models.AccountClassification) []models.Warning {
	if row.Amount == nil {
		return nil
	}
	abs := row.Amount.Abs()

	if abs.GreaterThan(magnitudeCeiling) {
		return []models.Warning{{
			RowIndex: row.RowIndex,
			Field:    models.FieldAmount,
			Message:  fmt.Sprintf("%q has magnitude %s above 1e12, likely a unit or entry error", row.AccountName, abs),
			Severity: models.SeverityHigh,
		}}
	}
	if row.IsPercentage {
		if abs.GreaterThan(decimal.NewFromInt(100)) {
			return []models.Warning{{
				RowIndex: row.RowIndex,
				Field:    models.FieldAmount,
				Message:  fmt.Sprintf("%q is a percentage row with magnitude %s above 100", row.AccountName, abs),
				Severity: models.SeverityMedium,
			}}
		}
		return nil
	}
	if !abs.IsZero() && abs.LessThan(decimal.NewFromInt(1)) {
		return []models.Warning{{
			RowIndex: row.RowIndex,
			Field:    models.FieldAmount,
			Message:  fmt.Sprintf("%q has magnitude %s below 1 on a non-percentage row", row.AccountName, abs),
			Severity: models.SeverityLow,
		}}
	}
	return nil
}

// hierarchyTolerance absorbs rounding in child sums.
var hierarchyTolerance = decimal.NewFromFloat(0.01)

// checkHierarchy compares each declared total against the sum of the
// non-total rows sharing its parent account.
func (e *Engine) checkHierarchy(results []models.AccountClassification) []models.Warning {
	sums := make(map[string]decimal.Decimal)
	for _, row := range results {
		if row.IsTotal || row.ParentAccount == "" || row.Amount == nil {
			continue
		}
		sums[row.ParentAccount] = sums[row.ParentAccount].Add(*row.Amount)
	}

	var warnings []models.Warning
	for _, row := range results {
		if !row.IsTotal || row.ParentAccount == "" || row.Amount == nil {
			continue
		}
		sum, ok := sums[row.ParentAccount]
		if !ok {
			continue
		}
		delta := sum.Sub(*row.Amount).Abs()
		if delta.GreaterThan(hierarchyTolerance) {
			warnings = append(warnings, models.Warning{
				RowIndex: row.RowIndex,
				Field:    models.FieldHierarchy,
				Message: fmt.Sprintf("children of %q sum to %s but the declared total is %s (difference %s)",
					row.ParentAccount, sum, row.Amount, delta),
				Severity: models.SeverityHigh,
			})
		}
	}
	return warnings
}
