// Package classifier assigns a taxonomy category, polarity and confidence
// to each extracted line item. One batched AI call covers the whole
// document; every AI verdict is re-checked against the local fallback
// classifier, and a total service failure degrades to a fully local run.
package classifier

import (
	"context"
	"strings"

	"warren/finparse/internal/aiclient"
	"warren/finparse/internal/fallback"
	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
	"warren/finparse/internal/taxonomy"
)

// MinTrustedConfidence is the AI confidence below which a verdict is
// re-scored locally.
const MinTrustedConfidence = 50

// enhancedNote is appended to the reasoning when the local classifier
// overrides or sharpens an AI verdict.
const enhancedNote = " (enhanced by local classifier)"

// Context carries document-level hints into a classification batch.
type Context struct {
	StatementType models.StatementType
	Currency      string
}

// Classifier runs batched account classification.
type Classifier struct {
	completer aiclient.Completer
	fallback  *fallback.Classifier
	registry  *taxonomy.Registry
	logger    logging.Logger
}

// NewClassifier builds a classifier. completer may be nil; every batch
// then runs in the local degraded mode.
func NewClassifier(completer aiclient.Completer, registry *taxonomy.Registry, logger logging.Logger) *Classifier {
	return &Classifier{
		completer: completer,
		fallback:  fallback.NewClassifier(registry, logger),
		registry:  registry,
		logger:    logger,
	}
}

// Classify categorizes a batch of accounts in a single AI call. It never
// returns an error: a failed or unparseable response classifies every
// account locally instead, and a malformed batch invalidates the whole
// batch rather than salvaging partial rows.
func (c *Classifier) Classify(ctx context.Context, accounts []models.ExtractedAccount, cctx Context) []models.AccountClassification {
	if len(accounts) == 0 {
		return []models.AccountClassification{}
	}

	outcome := aiclient.Attempt(ctx, c.completer, classificationSystemInstruction, buildClassificationPrompt(accounts, cctx))
	if !outcome.OK() {
		c.logger.WithError(outcome.Err).WithField(logging.FieldStage, "classify").
			Warn("AI classification unavailable, degrading to local classifier")
		return c.classifyAllLocally(accounts, cctx)
	}

	var resp classificationResponse
	if err := aiclient.DecodeJSON("account classification", outcome.Text, &resp); err != nil {
		c.logger.WithError(err).WithField(logging.FieldStage, "classify").
			Warn("AI classification response unparseable, degrading to local classifier")
		return c.classifyAllLocally(accounts, cctx)
	}

	results := c.mergeResponse(accounts, resp, cctx)

	c.logger.WithFields(
		logging.Field{Key: logging.FieldStage, Value: "classify"},
		logging.Field{Key: logging.FieldCount, Value: len(results)},
		logging.Field{Key: logging.FieldStatementType, Value: cctx.StatementType},
	).Debug("Account batch classified")
	return results
}

// mergeResponse pairs AI verdicts with their accounts by list position,
// validating each one. Accounts the response skipped are classified
// locally, so the output always covers the full batch.
func (c *Classifier) mergeResponse(accounts []models.ExtractedAccount, resp classificationResponse, cctx Context) []models.AccountClassification {
	byIndex := make(map[int]classificationRow, len(resp.Classifications))
	for _, row := range resp.Classifications {
		byIndex[int(row.Index)] = row
	}

	results := make([]models.AccountClassification, 0, len(accounts))
	for i, account := range accounts {
		row, ok := byIndex[i]
		if !ok {
			results = append(results, c.classifyLocally(account, cctx, "not present in AI response"))
			continue
		}
		results = append(results, c.validateVerdict(account, row.toModel(account), cctx))
	}
	return results
}

// validateVerdict enforces the trust rules on one AI verdict: a missing
// or unknown category, a generic other_* category, or confidence below
// MinTrustedConfidence triggers a local re-score. The more specific,
// higher-confidence result wins.
func (c *Classifier) validateVerdict(account models.ExtractedAccount, verdict models.AccountClassification, cctx Context) models.AccountClassification {
	if trusted(c.registry, verdict) {
		return verdict
	}

	local := c.fallback.Classify(account.Name, account.Value, &fallback.Context{StatementType: cctx.StatementType})
	if _, known := c.registry.Lookup(verdict.SuggestedCategory); known && !prefer(local, verdict) {
		return verdict
	}

	c.logger.WithFields(
		logging.Field{Key: logging.FieldAccount, Value: account.Name},
		logging.Field{Key: logging.FieldCategory, Value: local.Category},
		logging.Field{Key: logging.FieldMethod, Value: local.Method},
	).Debug("AI verdict overridden by local classifier")

	verdict.SuggestedCategory = local.Category
	verdict.IsInflow = local.IsInflow
	verdict.Confidence = local.Confidence
	verdict.Reasoning = local.Reasoning + enhancedNote
	return verdict
}

// trusted reports whether an AI verdict can be accepted as is.
func trusted(registry *taxonomy.Registry, verdict models.AccountClassification) bool {
	if verdict.SuggestedCategory == "" {
		return false
	}
	if _, ok := registry.Lookup(verdict.SuggestedCategory); !ok {
		return false
	}
	if isGenericKey(verdict.SuggestedCategory) {
		return false
	}
	return verdict.Confidence >= MinTrustedConfidence
}

// prefer decides whether the local result should replace the AI verdict:
// a specific category beats a generic or missing one, and otherwise the
// higher confidence wins.
func prefer(local fallback.Result, verdict models.AccountClassification) bool {
	if verdict.SuggestedCategory == "" {
		return true
	}
	if isGenericKey(verdict.SuggestedCategory) && !isGenericKey(local.Category) {
		return true
	}
	return local.Confidence > verdict.Confidence
}

func isGenericKey(key string) bool {
	switch key {
	case taxonomy.KeyOtherRevenue, taxonomy.KeyOtherIncome, taxonomy.KeyOtherExpense,
		taxonomy.KeyMiscellaneous, taxonomy.KeyUncategorized:
		return true
	}
	return strings.HasPrefix(key, "other_")
}

// classifyAllLocally is the degraded mode: every account goes through the
// fallback classifier, no AI involved.
func (c *Classifier) classifyAllLocally(accounts []models.ExtractedAccount, cctx Context) []models.AccountClassification {
	results := make([]models.AccountClassification, 0, len(accounts))
	for _, account := range accounts {
		results = append(results, c.classifyLocally(account, cctx, "AI service unavailable"))
	}
	return results
}

func (c *Classifier) classifyLocally(account models.ExtractedAccount, cctx Context, reason string) models.AccountClassification {
	local := c.fallback.Classify(account.Name, account.Value, &fallback.Context{StatementType: cctx.StatementType})
	return models.AccountClassification{
		AccountName:       account.Name,
		RowIndex:          account.RowIndex,
		Amount:            account.Value,
		SuggestedCategory: local.Category,
		IsInflow:          local.IsInflow,
		Confidence:        local.Confidence,
		Reasoning:         local.Reasoning + " [" + reason + "]",
	}
}
