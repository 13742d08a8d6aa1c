package classifier

import (
	"fmt"
	"strings"

	"warren/finparse/internal/models"
)

// classificationSystemInstruction encodes the accounting rules the model
// must follow. The validation engine re-enforces the same rules
// deterministically afterwards because model compliance is not
// guaranteed.
const classificationSystemInstruction = `You are a financial account classifier.
Given a numbered list of account line items from one financial statement (English or
Spanish), assign each a category key, polarity, and confidence.

Respond with ONLY a JSON object, no markdown fences, matching exactly:
{
  "classifications": [
    {
      "index": item number from the input,
      "category": "a lowercase_underscore taxonomy key such as sales_revenue, personnel_costs, rent_expense",
      "isInflow": true | false,
      "isTotal": true | false,
      "isSectionHeader": true | false,
      "isPercentage": true | false,
      "parentAccount": "name of the enclosing section or total, or empty",
      "confidence": 0-100,
      "reasoning": "one short sentence",
      "alternativeCategories": [{"category": "...", "confidence": 0-100}]
    }
  ]
}

Accounting rules:
- Rows are total rows only when their text contains a total word (total, subtotal, suma, grand total).
- Section headers carry no amount.
- Prefer specific categories over generic ones such as other_revenue or other_expense.
- Revenue categories are inflows; cost and expense categories are outflows.
- In cash flow statements, receipts and collections are inflows; payments and disbursements are outflows.
- A negative or parenthesized value usually indicates an expense or contra entry.
- Return one entry per input item, in any order, keyed by the item number.`

// buildClassificationPrompt renders one line per account with its value
// and an explicit hint when the sign already implies an expense. The
// previous account name is included as neighbor context.
func buildClassificationPrompt(accounts []models.ExtractedAccount, cctx Context) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Statement type: %s\n", cctx.StatementType)
	if cctx.Currency != "" {
		fmt.Fprintf(&b, "Currency: %s\n", cctx.Currency)
	}
	fmt.Fprintf(&b, "Accounts (%d items):\n\n", len(accounts))

	for i, account := range accounts {
		fmt.Fprintf(&b, "%d. %q", i, account.Name)
		if account.RawValue != "" {
			fmt.Fprintf(&b, " value=%s", account.RawValue)
		}
		if account.Value != nil && account.Value.IsNegative() {
			b.WriteString(" (negative, likely expense)")
		} else if strings.HasPrefix(strings.TrimSpace(account.RawValue), "(") {
			b.WriteString(" (parenthesized, likely expense)")
		}
		if i > 0 {
			fmt.Fprintf(&b, " [after: %q]", accounts[i-1].Name)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// classificationRow mirrors one JSON entry from the model. Numerics come
// back as float64 to tolerate answers like "85.0".
type classificationRow struct {
	Index           float64 `json:"index"`
	Category        string  `json:"category"`
	IsInflow        bool    `json:"isInflow"`
	IsTotal         bool    `json:"isTotal"`
	IsSectionHeader bool    `json:"isSectionHeader"`
	IsPercentage    bool    `json:"isPercentage"`
	ParentAccount   string  `json:"parentAccount"`
	Confidence      float64 `json:"confidence"`
	Reasoning       string  `json:"reasoning"`
	Alternatives    []struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	} `json:"alternativeCategories"`
}

type classificationResponse struct {
	Classifications []classificationRow `json:"classifications"`
}

// toModel binds an AI verdict to the account it describes. The row index
// and amount always come from the extracted account, never from the
// model.
func (r classificationRow) toModel(account models.ExtractedAccount) models.AccountClassification {
	c := models.AccountClassification{
		AccountName:       account.Name,
		RowIndex:          account.RowIndex,
		Amount:            account.Value,
		SuggestedCategory: strings.TrimSpace(r.Category),
		IsInflow:          r.IsInflow,
		IsTotal:           r.IsTotal,
		IsSectionHeader:   r.IsSectionHeader,
		IsPercentage:      r.IsPercentage,
		ParentAccount:     strings.TrimSpace(r.ParentAccount),
		Confidence:        models.ClampConfidence(int(r.Confidence)),
		Reasoning:         r.Reasoning,
	}
	for _, alt := range r.Alternatives {
		if alt.Category == "" {
			continue
		}
		c.Alternatives = append(c.Alternatives, models.AlternativeCategory{
			Category:   alt.Category,
			Confidence: models.ClampConfidence(int(alt.Confidence)),
		})
	}
	return c
}
