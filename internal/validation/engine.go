// Package validation is the deterministic safety net over the
// probabilistic classifier: it detects and fixes rule violations in a
// classification batch, computes the aggregate confidence, and decides
// whether the batch needs human review. No external calls.
package validation

import (
	"math"

	"warren/finparse/internal/config"
	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
	"warren/finparse/internal/taxonomy"
)

// Context carries document-level hints into a validation pass. Language
// is recorded for diagnostics only; the rules themselves are
// locale-independent because every keyword vocabulary covers both
// English and Spanish.
type Context struct {
	DocumentType models.StatementType
	Language     string
}

// Outcome bundles the corrected batch with its diagnostics.
type Outcome struct {
	Results    []models.AccountClassification
	Validation models.ValidationResult
}

// Engine validates classification batches against accounting rules.
type Engine struct {
	cfg      config.ValidationConfig
	registry *taxonomy.Registry
	logger   logging.Logger
}

// NewEngine builds a validation engine with the given penalties and
// review thresholds.
func NewEngine(cfg config.ValidationConfig, registry *taxonomy.Registry, logger logging.Logger) *Engine {
	return &Engine{cfg: cfg, registry: registry, logger: logger}
}

// Validate runs all rules over a batch. Detection reads original values
// only; corrections are applied in a single pass afterwards, so rules
// never observe each other's fixes. The returned Results slice is the
// input slice, mutated in place.
func (e *Engine) Validate(results []models.AccountClassification, vctx Context) Outcome {
	var corrections []models.Correction
	var warnings []models.Warning
	penalty := 0.0

	add := func(c []models.Correction, w []models.Warning, p float64) {
		corrections = append(corrections, c...)
		warnings = append(warnings, w...)
		penalty += p
	}

	for i := range results {
		row := results[i]
		if row.AccountName == "" && !row.HasAmount() {
			continue
		}

		add(e.checkTotalRow(row))
		add(e.checkSectionHeader(row))
		add(e.checkGenericCategory(row))
		add(e.checkPolarity(row, vctx))
		warnings = append(warnings, checkNumericSanity(row)...)
	}

	warnings = append(warnings, e.checkHierarchy(results)...)

	applyCorrections(results, corrections)

	validation := models.ValidationResult{
		Corrections: corrections,
		Warnings:    warnings,
		Confidence:  aggregateConfidence(results, penalty),
	}
	validation.RequiresManualReview = e.requiresReview(validation, penalty)

	e.logger.WithFields(
		logging.Field{Key: logging.FieldStage, Value: "validate"},
		logging.Field{Key: logging.FieldCount, Value: len(results)},
		logging.Field{Key: "corrections", Value: len(corrections)},
		logging.Field{Key: "warnings", Value: len(warnings)},
		logging.Field{Key: logging.FieldConfidence, Value: validation.Confidence},
	).Debug("Validation pass completed")

	return Outcome{Results: results, Validation: validation}
}

// applyCorrections mutates the batch according to the detected
// corrections. This is the only place classification values change after
// creation.
func applyCorrections(results []models.AccountClassification, corrections []models.Correction) {
	byRow := make(map[int]*models.AccountClassification, len(results))
	for i := range results {
		byRow[results[i].RowIndex] = &results[i]
	}

	for _, c := range corrections {
		row, ok := byRow[c.RowIndex]
		if !ok {
			continue
		}
		switch c.Field {
		case models.FieldIsTotal:
			if v, ok := c.CorrectedValue.(bool); ok {
				row.IsTotal = v
			}
		case models.FieldIsSectionHeader:
			if v, ok := c.CorrectedValue.(bool); ok {
				row.IsSectionHeader = v
			}
		case models.FieldClassification:
			if v, ok := c.CorrectedValue.(string); ok {
				row.SuggestedCategory = v
			}
		case models.FieldIsInflow:
			if v, ok := c.CorrectedValue.(bool); ok {
				row.IsInflow = v
			}
		}
	}
}

// aggregateConfidence is the mean per-row confidence shifted by the
// summed penalties, clamped to [0,1]. An empty batch had nothing to get
// wrong and scores full confidence.
func aggregateConfidence(results []models.AccountClassification, penalty float64) float64 {
	if len(results) == 0 {
		return clamp01(1 + penalty)
	}
	sum := 0.0
	for _, row := range results {
		sum += float64(row.Confidence) / 100
	}
	return clamp01(sum/float64(len(results)) + penalty)
}

func (e *Engine) requiresReview(v models.ValidationResult, penalty float64) bool {
	return v.HighSeverityCount() > e.cfg.MaxHighWarnings ||
		len(v.Corrections) > e.cfg.MaxCorrections ||
		v.CriticalCorrectionCount() > e.cfg.MaxCriticalCorrections ||
		penalty < e.cfg.MaxConfidenceShift
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
