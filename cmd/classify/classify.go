// Package classify handles the full pipeline command
package classify

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"warren/finparse/cmd/root"
	"warren/finparse/internal/pipeline"
	"warren/finparse/internal/report"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Run the full statement understanding pipeline",
	Long: `Classify runs structure analysis, account classification, and rule
validation over a CSV table, producing categorized line items with
confidence scores and a manual review decision.`,
	Run: classifyFunc,
}

func classifyFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("Input file is required")
	}

	rows, err := report.ReadTable(input)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read input file")
	}

	registry, err := root.Registry()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load taxonomy")
	}

	ctx, cancel := root.Context()
	defer cancel()

	pipe := pipeline.New(root.Completer(), registry, root.Cfg, root.Log)
	result := pipe.Run(ctx, rows, filepath.Base(input))

	if result.Validation.RequiresManualReview {
		root.Log.Warn("Batch requires manual review")
	}

	if err := writeResult(result); err != nil {
		root.Log.WithError(err).Fatal("Failed to write result")
	}
}

func writeResult(result pipeline.Result) error {
	output := root.SharedFlags.Output
	writer := report.NewWriter(root.Log)

	switch strings.ToLower(root.SharedFlags.Format) {
	case "csv":
		if output == "" {
			return fmt.Errorf("csv format requires --output")
		}
		return writer.WriteCSV(result, output)
	case "json", "":
		if output == "" {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		return writer.WriteJSON(result, output)
	default:
		return fmt.Errorf("unsupported output format: %s", root.SharedFlags.Format)
	}
}
