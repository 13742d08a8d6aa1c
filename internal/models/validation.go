package models

// Severity grades validation warnings.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Correction field names. Corrections reference classification fields by
// these names so downstream consumers can key on them.
const (
	FieldIsTotal         = "isTotal"
	FieldIsSectionHeader = "isSectionHeader"
	FieldClassification  = "classification"
	FieldIsInflow        = "isInflow"
	FieldAmount          = "amount"
	FieldHierarchy       = "hierarchy"
)

// Correction records one deterministic fix applied to a classification row.
type Correction struct {
	RowIndex       int         `json:"rowIndex"`
	Field          string      `json:"field"`
	OriginalValue  interface{} `json:"originalValue"`
	CorrectedValue interface{} `json:"correctedValue"`
	Reason         string      `json:"reason"`
}

// Warning flags a suspected data problem that was not auto-corrected.
type Warning struct {
	RowIndex int      `json:"rowIndex"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ValidationResult summarizes one validation pass over a classification
// batch. Recomputed fresh on every pass, never persisted on its own.
type ValidationResult struct {
	Corrections          []Correction `json:"corrections"`
	Warnings             []Warning    `json:"warnings"`
	Confidence           float64      `json:"confidence"`
	RequiresManualReview bool         `json:"requiresManualReview"`
}

// HighSeverityCount returns the number of high-severity warnings.
func (v ValidationResult) HighSeverityCount() int {
	n := 0
	for _, w := range v.Warnings {
		if w.Severity == SeverityHigh {
			n++
		}
	}
	return n
}

// CriticalCorrectionCount returns corrections touching classification or
// polarity, the two fields that change reported figures.
func (v ValidationResult) CriticalCorrectionCount() int {
	n := 0
	for _, c := range v.Corrections {
		if c.Field == FieldClassification || c.Field == FieldIsInflow {
			n++
		}
	}
	return n
}
