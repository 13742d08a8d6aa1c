package classifier

import (
	"context"

	"warren/finparse/internal/aiclient"
	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
	"warren/finparse/internal/structure"
)

// combinedSystemInstruction asks for the structure analysis and the
// per-row classifications in one response, halving the external calls
// for a document.
const combinedSystemInstruction = `You are a financial spreadsheet analyst.
Given a sample of rows from a spreadsheet (profit and loss, balance sheet, or cash flow,
in English or Spanish), determine its structure AND classify every data row.

Respond with ONLY a JSON object, no markdown fences, matching exactly:
{
  "structure": ` + structure.ResponseSchema + `,
  "classifications": [
    {
      "index": row index of the data row,
      "category": "a lowercase_underscore taxonomy key",
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

Rules:
- Row and column indexes are zero-based; classification index is the row index in the table.
- Header, total and subtotal rows are part of the structure, not classifications.
- Prefer specific categories over generic ones such as other_revenue or other_expense.
- Revenue categories are inflows; cost and expense categories are outflows.
- A negative or parenthesized value usually indicates an expense or contra entry.`

type combinedResponse struct {
	Structure       structureEnvelope   `json:"structure"`
	Classifications []classificationRow `json:"classifications"`
}

// structureEnvelope defers structure decoding to the structure package,
// which owns the schema and its normalization.
type structureEnvelope struct {
	raw []byte
}

func (e *structureEnvelope) UnmarshalJSON(data []byte) error {
	e.raw = append(e.raw[:0], data...)
	return nil
}

// AnalyzeAndClassify runs the combined single-call variant: one response
// carries the document structure and the row classifications. Both the
// structure normalization and the per-verdict trust rules still apply.
// ok=false means the caller must fall back to the separate path
// (structure analysis, then classification).
func (c *Classifier) AnalyzeAndClassify(ctx context.Context, rows models.RawTable, sampleRows int, fileNameHint string) (models.DocumentStructure, []models.AccountClassification, bool) {
	if sampleRows <= 0 {
		sampleRows = structure.DefaultSampleRows
	}

	outcome := aiclient.Attempt(ctx, c.completer, combinedSystemInstruction, structure.RenderSample(rows, sampleRows, fileNameHint))
	if !outcome.OK() {
		c.logger.WithError(outcome.Err).WithField(logging.FieldStage, "combined").
			Warn("AI combined analysis unavailable")
		return models.DocumentStructure{}, nil, false
	}

	var resp combinedResponse
	if err := aiclient.DecodeJSON("combined analysis", outcome.Text, &resp); err != nil {
		c.logger.WithError(err).WithField(logging.FieldStage, "combined").
			Warn("AI combined response unparseable")
		return models.DocumentStructure{}, nil, false
	}

	docStructure, err := structure.Decode("combined analysis", string(resp.Structure.raw), rows)
	if err != nil {
		c.logger.WithError(err).WithField(logging.FieldStage, "combined").
			Warn("AI combined structure unparseable")
		return models.DocumentStructure{}, nil, false
	}

	accounts := structure.ExtractAccounts(rows, docStructure)
	cctx := Context{StatementType: docStructure.StatementType, Currency: docStructure.Currency}

	// Combined verdicts are keyed by table row index, not list position.
	byRow := make(map[int]classificationRow, len(resp.Classifications))
	for _, row := range resp.Classifications {
		byRow[int(row.Index)] = row
	}

	results := make([]models.AccountClassification, 0, len(accounts))
	for _, account := range accounts {
		row, ok := byRow[account.RowIndex]
		if !ok {
			results = append(results, c.classifyLocally(account, cctx, "not present in AI response"))
			continue
		}
		results = append(results, c.validateVerdict(account, row.toModel(account), cctx))
	}

	c.logger.WithFields(
		logging.Field{Key: logging.FieldStage, Value: "combined"},
		logging.Field{Key: logging.FieldStatementType, Value: docStructure.StatementType},
		logging.Field{Key: logging.FieldCount, Value: len(results)},
	).Debug("Combined analysis completed")
	return docStructure, results, true
}
