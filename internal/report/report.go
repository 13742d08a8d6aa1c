// Package report renders a processed statement batch for downstream
// consumers: a CSV of the classified rows, or the full result as JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
	"warren/finparse/internal/pipeline"
)

// Row is one classified account in the CSV export.
type Row struct {
	RowIndex   int    `csv:"RowIndex"`
	Account    string `csv:"Account"`
	Category   string `csv:"Category"`
	IsInflow   bool   `csv:"IsInflow"`
	IsTotal    bool   `csv:"IsTotal"`
	IsHeader   bool   `csv:"IsHeader"`
	Amount     string `csv:"Amount"`
	Confidence int    `csv:"Confidence"`
	Reasoning  string `csv:"Reasoning"`
}

// Writer exports batch results to files.
type Writer struct {
	logger logging.Logger
}

// NewWriter creates a report writer.
func NewWriter(logger logging.Logger) *Writer {
	return &Writer{logger: logger}
}

// WriteCSV writes the classified rows of a batch to a CSV file.
func (w *Writer) WriteCSV(result pipeline.Result, path string) error {
	rows := make([]Row, 0, len(result.Classifications))
	for _, c := range result.Classifications {
		row := Row{
			RowIndex:   c.RowIndex,
			Account:    c.AccountName,
			Category:   c.SuggestedCategory,
			IsInflow:   c.IsInflow,
			IsTotal:    c.IsTotal,
			IsHeader:   c.IsSectionHeader,
			Confidence: c.Confidence,
			Reasoning:  c.Reasoning,
		}
		if c.Amount != nil {
			row.Amount = c.Amount.StringFixed(2)
		}
		rows = append(rows, row)
	}

	file, err := os.Create(path)
	if err != nil {
		w.logger.WithError(err).WithField(logging.FieldFile, path).Error("Failed to create report file")
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close report file")
		}
	}()

	writer := csv.NewWriter(file)
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		w.logger.WithError(err).Error("Failed to marshal report rows")
		return fmt.Errorf("error writing report data: %w", err)
	}

	w.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldBatchID, Value: result.BatchID},
	).Info("Report written")
	return nil
}

// WriteJSON writes the complete result, structure and diagnostics
// included, as indented JSON.
func (w *Writer) WriteJSON(result pipeline.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		w.logger.WithError(err).WithField(logging.FieldFile, path).Error("Failed to write result file")
		return fmt.Errorf("error writing result file: %w", err)
	}
	w.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldBatchID, Value: result.BatchID},
	).Info("Result written")
	return nil
}

// ReadTable loads a CSV file as a raw table for the pipeline. Cells stay
// untyped strings; structure analysis decides what they mean.
func ReadTable(path string) (models.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}

	table := make(models.RawTable, 0, len(records))
	for _, record := range records {
		row := make(models.RawRow, len(record))
		for i, cell := range record {
			row[i] = cell
		}
		table = append(table, row)
	}
	return table, nil
}
