package structure

import (
	"strings"

	"github.com/shopspring/decimal"

	"warren/finparse/internal/models"
)

// totalPrefixes marks rows excluded from account extraction; they are
// aggregates, not line items, and must never reach a classifier.
var totalPrefixes = []string{"total", "subtotal", "suma", "grand total"}

// ExtractAccounts walks the data rows of a table and produces the line
// items to classify. Header, total and subtotal rows are skipped, as are
// rows without an account name.
func ExtractAccounts(rows models.RawTable, s models.DocumentStructure) []models.ExtractedAccount {
	var accounts []models.ExtractedAccount

	nameCol := guessNameColumn(rows, s)

	for i := s.DataStartRow; i <= s.DataEndRow && i < rows.RowCount(); i++ {
		if s.IsHeaderRow(i) || s.IsTotalRow(i) {
			continue
		}

		name := readName(rows[i], nameCol)
		if name == "" || isTotalName(name) {
			continue
		}

		account := models.ExtractedAccount{Name: name, RowIndex: i}
		if value, raw, ok := readValue(rows[i], s, nameCol); ok {
			account.Value = value
			account.RawValue = raw
		}
		accounts = append(accounts, account)
	}
	return accounts
}

// guessNameColumn returns the structure's name column, or the first
// column that mostly holds non-numeric text in the data rows.
func guessNameColumn(rows models.RawTable, s models.DocumentStructure) int {
	if s.AccountCols.NameColumn != nil {
		return *s.AccountCols.NameColumn
	}

	colCount := rows.ColumnCount()
	for col := 0; col < colCount; col++ {
		text, numeric := 0, 0
		for i := s.DataStartRow; i <= s.DataEndRow && i < rows.RowCount(); i++ {
			cell := rows.Cell(i, col)
			if cell == nil {
				continue
			}
			if _, ok := models.CellAmount(cell); ok {
				numeric++
			} else if models.CellString(cell) != "" {
				text++
			}
		}
		if text > numeric {
			return col
		}
	}
	return 0
}

func readName(row models.RawRow, nameCol int) string {
	if nameCol < len(row) {
		if name := models.CellString(row[nameCol]); name != "" {
			if _, isNumber := models.CellAmount(row[nameCol]); !isNumber {
				return name
			}
		}
	}
	// Ragged row or misplaced name: take the first textual cell.
	for _, cell := range row {
		name := models.CellString(cell)
		if name == "" {
			continue
		}
		if _, isNumber := models.CellAmount(cell); !isNumber {
			return name
		}
	}
	return ""
}

// readValue picks the row's amount from the first period column, or from
// the first numeric cell after the name column when no period columns
// were detected.
func readValue(row models.RawRow, s models.DocumentStructure, nameCol int) (*decimal.Decimal, string, bool) {
	for _, pc := range s.PeriodColumns {
		if pc.ColumnIndex >= len(row) {
			continue
		}
		if v, ok := models.CellAmount(row[pc.ColumnIndex]); ok {
			return &v, models.CellString(row[pc.ColumnIndex]), true
		}
	}
	for col := nameCol + 1; col < len(row); col++ {
		if v, ok := models.CellAmount(row[col]); ok {
			return &v, models.CellString(row[col]), true
		}
	}
	return nil, "", false
}

func isTotalName(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range totalPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
