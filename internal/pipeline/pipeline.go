// Package pipeline wires the full statement understanding flow: raw rows
// in, corrected classification batch plus diagnostics out. Structure
// analysis, batched classification, and rule validation run in sequence,
// each with its own deterministic fallback, so a run never fails.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"warren/finparse/internal/aiclient"
	"warren/finparse/internal/classifier"
	"warren/finparse/internal/config"
	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
	"warren/finparse/internal/structure"
	"warren/finparse/internal/taxonomy"
	"warren/finparse/internal/validation"
)

// Result is the output of one document run, keyed by batch id for
// downstream reporting.
type Result struct {
	BatchID         string                         `json:"batchId"`
	FileName        string                         `json:"fileName,omitempty"`
	Structure       models.DocumentStructure       `json:"structure"`
	Classifications []models.AccountClassification `json:"classifications"`
	Validation      models.ValidationResult        `json:"validation"`
}

// Pipeline orchestrates one classification run per call. Stateless
// between batches; safe to reuse.
type Pipeline struct {
	analyzer   *structure.Analyzer
	classifier *classifier.Classifier
	validator  *validation.Engine
	logger     logging.Logger
	combined   bool
	sampleRows int
}

// New assembles a pipeline from its collaborators. completer may be nil
// for a fully local run.
func New(completer aiclient.Completer, registry *taxonomy.Registry, cfg config.Config, logger logging.Logger) *Pipeline {
	analyzer := structure.NewAnalyzer(completer, logger)
	if cfg.AI.SampleRows > 0 {
		analyzer.SetSampleRows(cfg.AI.SampleRows)
	}
	return &Pipeline{
		analyzer:   analyzer,
		classifier: classifier.NewClassifier(completer, registry, logger),
		validator:  validation.NewEngine(cfg.Validation, registry, logger),
		logger:     logger,
		combined:   cfg.AI.CombinedAnalysis,
		sampleRows: cfg.AI.SampleRows,
	}
}

// Run processes one document. It always returns a complete result:
// quality is communicated through confidence and the manual review flag,
// never through failure.
func (p *Pipeline) Run(ctx context.Context, rows models.RawTable, fileNameHint string) Result {
	batchID := uuid.New().String()
	log := p.logger.WithFields(
		logging.Field{Key: logging.FieldBatchID, Value: batchID},
		logging.Field{Key: logging.FieldRowCount, Value: rows.RowCount()},
	)
	log.Info("Processing statement batch")

	docStructure, classifications := p.analyzeAndClassify(ctx, rows, fileNameHint)

	outcome := p.validator.Validate(classifications, validation.Context{
		DocumentType: docStructure.StatementType,
	})

	log.WithFields(
		logging.Field{Key: logging.FieldStatementType, Value: docStructure.StatementType},
		logging.Field{Key: logging.FieldCount, Value: len(outcome.Results)},
		logging.Field{Key: logging.FieldConfidence, Value: outcome.Validation.Confidence},
		logging.Field{Key: "requires_review", Value: outcome.Validation.RequiresManualReview},
	).Info("Statement batch processed")

	return Result{
		BatchID:         batchID,
		FileName:        fileNameHint,
		Structure:       docStructure,
		Classifications: outcome.Results,
		Validation:      outcome.Validation,
	}
}

// analyzeAndClassify takes the combined single-call path when enabled,
// falling back to the separate structure-then-classify path on any
// combined failure.
func (p *Pipeline) analyzeAndClassify(ctx context.Context, rows models.RawTable, fileNameHint string) (models.DocumentStructure, []models.AccountClassification) {
	if p.combined {
		if s, classifications, ok := p.classifier.AnalyzeAndClassify(ctx, rows, p.sampleRows, fileNameHint); ok {
			return s, classifications
		}
		p.logger.WithField(logging.FieldStage, "combined").
			Info("Combined analysis failed, taking the separate path")
	}

	docStructure := p.analyzer.Analyze(ctx, rows, fileNameHint)
	accounts := structure.ExtractAccounts(rows, docStructure)
	classifications := p.classifier.Classify(ctx, accounts, classifier.Context{
		StatementType: docStructure.StatementType,
		Currency:      docStructure.Currency,
	})
	return docStructure, classifications
}
