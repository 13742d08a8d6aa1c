package structure

import (
	"warren/finparse/internal/aiclient"
	"warren/finparse/internal/models"
)

// ResponseSchema is the JSON shape requested from the model for a
// structure analysis. The combined analysis prompt embeds it too, so it
// lives apart from the instruction text.
const ResponseSchema = `{
  "statementType": "profit_loss" | "balance_sheet" | "cash_flow" | "unknown",
  "confidence": 0-100,
  "headerRows": [row indexes],
  "totalRows": [row indexes of grand total rows],
  "subtotalRows": [row indexes of subtotal rows],
  "dataStartRow": first data row index,
  "dataEndRow": last data row index (may exceed the sample when the document is longer),
  "accountColumns": {"codeColumn": index or null, "nameColumn": index or null, "confidence": 0-100},
  "periodColumns": [{"columnIndex": index, "periodLabel": "...", "periodType": "month"|"quarter"|"year"|"custom", "confidence": 0-100}],
  "currency": "ISO 4217 code such as USD, EUR, MXN",
  "reasoning": "one short sentence"
}`

// structureSystemInstruction teaches the model the analysis task and the
// exact JSON shape expected back. The same shape is re-validated in
// Normalize because model compliance is not guaranteed.
const structureSystemInstruction = `You are a financial spreadsheet structure analyst.
Given a sample of rows from a spreadsheet (profit and loss, balance sheet, or cash flow,
in English or Spanish), determine its structure.

Respond with ONLY a JSON object, no markdown fences, matching exactly:
` + ResponseSchema + `

Rules:
- Row and column indexes are zero-based.
- Header rows carry labels, not amounts.
- Total and subtotal rows contain words like "total", "subtotal", "suma".
- Period columns hold amounts for a reporting period (months, quarters, years).
- When unsure of the statement type, use "unknown" with low confidence.`

// Decode parses a structure JSON document and normalizes the result
// against the table it describes.
func Decode(operation, raw string, rows models.RawTable) (models.DocumentStructure, error) {
	var resp structureResponse
	if err := aiclient.DecodeJSON(operation, raw, &resp); err != nil {
		return models.DocumentStructure{}, err
	}
	s := resp.toModel()
	Normalize(&s, rows)
	return s, nil
}

// structureResponse mirrors the JSON the model returns. Numeric fields
// are decoded as float64 because models sometimes emit "85.0".
type structureResponse struct {
	StatementType string  `json:"statementType"`
	Confidence    float64 `json:"confidence"`
	HeaderRows    []int   `json:"headerRows"`
	TotalRows     []int   `json:"totalRows"`
	SubtotalRows  []int   `json:"subtotalRows"`
	DataStartRow  float64 `json:"dataStartRow"`
	DataEndRow    float64 `json:"dataEndRow"`
	AccountCols   struct {
		CodeColumn *float64 `json:"codeColumn"`
		NameColumn *float64 `json:"nameColumn"`
		Confidence float64  `json:"confidence"`
	} `json:"accountColumns"`
	PeriodColumns []struct {
		ColumnIndex float64 `json:"columnIndex"`
		PeriodLabel string  `json:"periodLabel"`
		PeriodType  string  `json:"periodType"`
		Confidence  float64 `json:"confidence"`
	} `json:"periodColumns"`
	Currency  string `json:"currency"`
	Reasoning string `json:"reasoning"`
}

func (r structureResponse) toModel() models.DocumentStructure {
	s := models.DocumentStructure{
		StatementType: models.StatementType(r.StatementType),
		Confidence:    int(r.Confidence),
		HeaderRows:    r.HeaderRows,
		TotalRows:     r.TotalRows,
		SubtotalRows:  r.SubtotalRows,
		DataStartRow:  int(r.DataStartRow),
		DataEndRow:    int(r.DataEndRow),
		Currency:      r.Currency,
		Reasoning:     r.Reasoning,
	}
	s.AccountCols.Confidence = int(r.AccountCols.Confidence)
	if r.AccountCols.CodeColumn != nil {
		col := int(*r.AccountCols.CodeColumn)
		s.AccountCols.CodeColumn = &col
	}
	if r.AccountCols.NameColumn != nil {
		col := int(*r.AccountCols.NameColumn)
		s.AccountCols.NameColumn = &col
	}
	for _, pc := range r.PeriodColumns {
		s.PeriodColumns = append(s.PeriodColumns, models.PeriodColumn{
			ColumnIndex: int(pc.ColumnIndex),
			PeriodLabel: pc.PeriodLabel,
			PeriodType:  models.PeriodType(pc.PeriodType),
			Confidence:  int(pc.Confidence),
		})
	}
	return s
}
