package models

import (
	"fmt"
	"regexp"
)

// CategoryType distinguishes account rows from structural rows.
type CategoryType string

const (
	CategoryTypeAccount CategoryType = "account"
	CategoryTypeSection CategoryType = "section"
	CategoryTypeTotal   CategoryType = "total"
)

// Locale codes used for bilingual labels and keyword dictionaries.
const (
	LocaleEnglish = "en"
	LocaleSpanish = "es"
)

var categoryKeyPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// CategoryDefinition is one entry of the category taxonomy.
// Default definitions are process-wide and immutable; custom definitions
// are owned by a tenant and carry IsCustom=true.
type CategoryDefinition struct {
	Key           string            `json:"key" yaml:"key"`
	Labels        map[string]string `json:"labels" yaml:"labels"`
	IsInflow      bool              `json:"isInflow" yaml:"is_inflow"`
	StatementType StatementType     `json:"statementType" yaml:"statement_type"`
	CategoryType  CategoryType      `json:"categoryType" yaml:"category_type"`
	Group         string            `json:"group,omitempty" yaml:"group,omitempty"`
	IsCustom      bool              `json:"isCustom" yaml:"is_custom,omitempty"`
}

// Label returns the label for the given locale, falling back to English
// and finally to the raw key.
func (d CategoryDefinition) Label(locale string) string {
	if l, ok := d.Labels[locale]; ok && l != "" {
		return l
	}
	if l, ok := d.Labels[LocaleEnglish]; ok && l != "" {
		return l
	}
	return d.Key
}

// ValidateKey checks that a category key matches the required
// lowercase/underscore format.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("category key must not be empty")
	}
	if !categoryKeyPattern.MatchString(key) {
		return fmt.Errorf("category key %q must match [a-z0-9_]+", key)
	}
	return nil
}

// Validate checks a definition for structural errors. Malformed default
// definitions are a programming-contract violation and abort startup.
func (d CategoryDefinition) Validate() error {
	if err := ValidateKey(d.Key); err != nil {
		return err
	}
	if !ValidStatementType(d.StatementType) {
		return fmt.Errorf("category %q has invalid statement type %q", d.Key, d.StatementType)
	}
	switch d.CategoryType {
	case CategoryTypeAccount, CategoryTypeSection, CategoryTypeTotal:
	default:
		return fmt.Errorf("category %q has invalid category type %q", d.Key, d.CategoryType)
	}
	if len(d.Labels) == 0 {
		return fmt.Errorf("category %q has no labels", d.Key)
	}
	return nil
}
