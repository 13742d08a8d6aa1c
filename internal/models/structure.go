package models

// StatementType identifies the kind of financial document being analyzed.
type StatementType string

const (
	StatementProfitLoss   StatementType = "profit_loss"
	StatementBalanceSheet StatementType = "balance_sheet"
	StatementCashFlow     StatementType = "cash_flow"
	StatementUnknown      StatementType = "unknown"
)

// ValidStatementType reports whether s is one of the recognized statement types.
func ValidStatementType(s StatementType) bool {
	switch s {
	case StatementProfitLoss, StatementBalanceSheet, StatementCashFlow, StatementUnknown:
		return true
	}
	return false
}

// PeriodType classifies a period column header.
type PeriodType string

const (
	PeriodMonth   PeriodType = "month"
	PeriodQuarter PeriodType = "quarter"
	PeriodYear    PeriodType = "year"
	PeriodCustom  PeriodType = "custom"
)

// AccountColumns locates the columns holding account codes and names.
type AccountColumns struct {
	CodeColumn *int `json:"codeColumn,omitempty"`
	NameColumn *int `json:"nameColumn,omitempty"`
	Confidence int  `json:"confidence"`
}

// PeriodColumn describes one reporting-period column of the table.
type PeriodColumn struct {
	ColumnIndex int        `json:"columnIndex"`
	PeriodLabel string     `json:"periodLabel"`
	PeriodType  PeriodType `json:"periodType"`
	Confidence  int        `json:"confidence"`
}

// DocumentStructure is the structural analysis of a raw table.
// Immutable once computed; the Reasoning field is diagnostic text and is
// never parsed downstream.
type DocumentStructure struct {
	StatementType StatementType  `json:"statementType"`
	Confidence    int            `json:"confidence"`
	HeaderRows    []int          `json:"headerRows"`
	TotalRows     []int          `json:"totalRows"`
	SubtotalRows  []int          `json:"subtotalRows"`
	DataStartRow  int            `json:"dataStartRow"`
	DataEndRow    int            `json:"dataEndRow"`
	AccountCols   AccountColumns `json:"accountColumns"`
	PeriodColumns []PeriodColumn `json:"periodColumns"`
	Currency      string         `json:"currency"`
	Reasoning     string         `json:"reasoning,omitempty"`
}

// IsHeaderRow reports whether the given row index is a header row.
func (d DocumentStructure) IsHeaderRow(row int) bool {
	return containsInt(d.HeaderRows, row)
}

// IsTotalRow reports whether the given row index is a total or subtotal row.
func (d DocumentStructure) IsTotalRow(row int) bool {
	return containsInt(d.TotalRows, row) || containsInt(d.SubtotalRows, row)
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// ClampConfidence bounds a confidence score to [0, 100].
func ClampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
