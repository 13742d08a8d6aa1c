// Package structure determines the layout of a raw spreadsheet table:
// statement type, header and data row ranges, account and period columns,
// and currency. An AI completion does the heavy lifting; a deterministic
// fallback guarantees the pipeline never stalls on a failed call.
package structure

import (
	"context"
	"fmt"
	"strings"

	"warren/finparse/internal/aiclient"
	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
)

// DefaultSampleRows bounds how much of the table is shown to the model.
// Deep tables are analyzed structurally from this sample; dataEndRow may
// legitimately exceed it.
const DefaultSampleRows = 25

// FallbackConfidence marks structures produced without the AI.
const FallbackConfidence = 30

// Analyzer derives a DocumentStructure from raw rows.
type Analyzer struct {
	completer  aiclient.Completer
	logger     logging.Logger
	sampleRows int
}

// NewAnalyzer creates an Analyzer. completer may be nil, in which case
// every analysis takes the deterministic fallback path.
func NewAnalyzer(completer aiclient.Completer, logger logging.Logger) *Analyzer {
	return &Analyzer{
		completer:  completer,
		logger:     logger,
		sampleRows: DefaultSampleRows,
	}
}

// SetSampleRows overrides the number of rows sampled into the prompt.
func (a *Analyzer) SetSampleRows(n int) {
	if n > 0 {
		a.sampleRows = n
	}
}

// Analyze computes the document structure for a table. It never returns
// an error: on any AI failure (network, parse, service) the deterministic
// fallback structure is used and the degradation is visible only through
// the confidence score.
func (a *Analyzer) Analyze(ctx context.Context, rows models.RawTable, fileNameHint string) models.DocumentStructure {
	outcome := aiclient.Attempt(ctx, a.completer, structureSystemInstruction, RenderSample(rows, a.sampleRows, fileNameHint))
	if !outcome.OK() {
		a.logger.WithError(outcome.Err).WithField(logging.FieldStage, "structure").
			Warn("AI structure analysis unavailable, using fallback structure")
		return FallbackStructure(rows)
	}

	structure, err := Decode("structure analysis", outcome.Text, rows)
	if err != nil {
		a.logger.WithError(err).WithField(logging.FieldStage, "structure").
			Warn("AI structure response unparseable, using fallback structure")
		return FallbackStructure(rows)
	}

	a.logger.WithFields(
		logging.Field{Key: logging.FieldStage, Value: "structure"},
		logging.Field{Key: logging.FieldStatementType, Value: structure.StatementType},
		logging.Field{Key: logging.FieldConfidence, Value: structure.Confidence},
		logging.Field{Key: logging.FieldRowCount, Value: rows.RowCount()},
	).Debug("Document structure analyzed")
	return structure
}

// FallbackStructure is the minimal deterministic structure: first row is
// the header, everything after is data, currency defaults to USD.
func FallbackStructure(rows models.RawTable) models.DocumentStructure {
	end := rows.RowCount() - 1
	start := 1
	if end < 1 {
		start = rows.RowCount() // no data rows
	}
	return models.DocumentStructure{
		StatementType: models.StatementUnknown,
		Confidence:    FallbackConfidence,
		HeaderRows:    []int{0},
		TotalRows:     []int{},
		SubtotalRows:  []int{},
		DataStartRow:  start,
		DataEndRow:    end,
		AccountCols:   models.AccountColumns{Confidence: FallbackConfidence},
		PeriodColumns: []models.PeriodColumn{},
		Currency:      "USD",
		Reasoning:     "fallback structure: AI analysis unavailable",
	}
}

// Normalize defends the pipeline against a structurally invalid AI
// answer: clamps confidences, bounds row indexes to the table, coerces
// nil slices, and drops duplicate or out-of-range period columns.
// Spreadsheet input is untrusted, so violations are repaired, not thrown.
func Normalize(s *models.DocumentStructure, rows models.RawTable) {
	rowCount := rows.RowCount()
	colCount := rows.ColumnCount()

	if !models.ValidStatementType(s.StatementType) {
		s.StatementType = models.StatementUnknown
	}
	s.Confidence = models.ClampConfidence(s.Confidence)
	s.AccountCols.Confidence = models.ClampConfidence(s.AccountCols.Confidence)

	if s.HeaderRows == nil {
		s.HeaderRows = []int{}
	}
	if s.TotalRows == nil {
		s.TotalRows = []int{}
	}
	if s.SubtotalRows == nil {
		s.SubtotalRows = []int{}
	}
	if s.Currency == "" || len(s.Currency) != 3 {
		s.Currency = "USD"
	}
	s.Currency = strings.ToUpper(s.Currency)

	if rowCount == 0 {
		s.DataStartRow = 0
		s.DataEndRow = -1
		s.PeriodColumns = []models.PeriodColumn{}
		return
	}

	if s.DataStartRow < 0 {
		s.DataStartRow = 0
	}
	if s.DataStartRow > rowCount-1 {
		s.DataStartRow = rowCount - 1
	}
	if s.DataEndRow > rowCount-1 {
		s.DataEndRow = rowCount - 1
	}
	if s.DataEndRow < s.DataStartRow {
		s.DataEndRow = s.DataStartRow
	}

	if s.AccountCols.NameColumn != nil && (*s.AccountCols.NameColumn < 0 || *s.AccountCols.NameColumn >= colCount) {
		s.AccountCols.NameColumn = nil
	}
	if s.AccountCols.CodeColumn != nil && (*s.AccountCols.CodeColumn < 0 || *s.AccountCols.CodeColumn >= colCount) {
		s.AccountCols.CodeColumn = nil
	}

	seen := make(map[int]bool)
	cols := make([]models.PeriodColumn, 0, len(s.PeriodColumns))
	for _, pc := range s.PeriodColumns {
		if pc.ColumnIndex < 0 || pc.ColumnIndex >= colCount || seen[pc.ColumnIndex] {
			continue
		}
		switch pc.PeriodType {
		case models.PeriodMonth, models.PeriodQuarter, models.PeriodYear, models.PeriodCustom:
		default:
			pc.PeriodType = models.PeriodCustom
		}
		pc.Confidence = models.ClampConfidence(pc.Confidence)
		seen[pc.ColumnIndex] = true
		cols = append(cols, pc)
	}
	s.PeriodColumns = cols
}

// RenderSample renders the first rows of a table as pipe-delimited text
// with row indexes, plus the filename hint when available. The same
// rendering feeds the structure prompt and the combined analysis prompt.
func RenderSample(rows models.RawTable, limit int, fileNameHint string) string {
	var b strings.Builder

	if fileNameHint != "" {
		fmt.Fprintf(&b, "File name: %s\n", fileNameHint)
	}
	fmt.Fprintf(&b, "Total rows in document: %d\n", rows.RowCount())
	fmt.Fprintf(&b, "Sample of the first rows (row index | cells):\n\n")

	if limit > rows.RowCount() {
		limit = rows.RowCount()
	}
	for i := 0; i < limit; i++ {
		cells := make([]string, len(rows[i]))
		for j, cell := range rows[i] {
			cells[j] = models.CellString(cell)
		}
		fmt.Fprintf(&b, "%d | %s\n", i, strings.Join(cells, " | "))
	}
	return b.String()
}
