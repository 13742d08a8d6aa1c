package models

import (
	"github.com/shopspring/decimal"
)

// ExtractedAccount is one line item pulled out of the data rows of a table.
// Discarded after classification.
type ExtractedAccount struct {
	Name     string
	RowIndex int
	// Value is the amount read from the first period column, when present.
	Value *decimal.Decimal
	// RawValue keeps the original cell text for prompt context.
	RawValue string
}

// HasValue reports whether a numeric value was extracted for the account.
func (a ExtractedAccount) HasValue() bool {
	return a.Value != nil
}

// AlternativeCategory is a lower-ranked category candidate for an account.
type AlternativeCategory struct {
	Category   string `json:"category"`
	Confidence int    `json:"confidence"`
}

// AccountClassification is the classifier's verdict for one line item.
// The validation engine is the only component allowed to mutate a
// classification after creation.
type AccountClassification struct {
	AccountName       string                `json:"accountName"`
	RowIndex          int                   `json:"rowIndex"`
	Amount            *decimal.Decimal      `json:"amount,omitempty"`
	SuggestedCategory string                `json:"suggestedCategory"`
	IsInflow          bool                  `json:"isInflow"`
	IsTotal           bool                  `json:"isTotal"`
	IsSectionHeader   bool                  `json:"isSectionHeader"`
	IsPercentage      bool                  `json:"isPercentage"`
	ParentAccount     string                `json:"parentAccount,omitempty"`
	Confidence        int                   `json:"confidence"`
	Reasoning         string                `json:"reasoning,omitempty"`
	Alternatives      []AlternativeCategory `json:"alternativeCategories,omitempty"`
}

// HasAmount reports whether the row carries a non-zero amount.
func (c AccountClassification) HasAmount() bool {
	return c.Amount != nil && !c.Amount.IsZero()
}

// AmountOrZero returns the row amount, or zero when absent.
func (c AccountClassification) AmountOrZero() decimal.Decimal {
	if c.Amount == nil {
		return decimal.Zero
	}
	return *c.Amount
}
