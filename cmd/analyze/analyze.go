// Package analyze handles the structure analysis command
package analyze

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"warren/finparse/cmd/root"
	"warren/finparse/internal/report"
	"warren/finparse/internal/structure"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the structure of a statement spreadsheet",
	Long: `Analyze determines the statement type, header and data row ranges,
account and period columns, and currency of a CSV table, without
classifying its rows.`,
	Run: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("Input file is required")
	}

	rows, err := report.ReadTable(input)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read input file")
	}

	ctx, cancel := root.Context()
	defer cancel()

	analyzer := structure.NewAnalyzer(root.Completer(), root.Log)
	if root.Cfg.AI.SampleRows > 0 {
		analyzer.SetSampleRows(root.Cfg.AI.SampleRows)
	}
	docStructure := analyzer.Analyze(ctx, rows, filepath.Base(input))

	data, err := json.MarshalIndent(docStructure, "", "  ")
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to marshal structure")
	}

	if root.SharedFlags.Output == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(root.SharedFlags.Output, data, 0o644); err != nil {
		root.Log.WithError(err).Fatal("Failed to write output file")
	}
	root.Log.WithField("file", root.SharedFlags.Output).Info("Structure written")
}
