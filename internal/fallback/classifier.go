// Package fallback implements the deterministic account classifier used
// when the AI service is unavailable or returns low-confidence results.
// It requires no external calls and is total: every non-empty account
// name yields a classification.
package fallback

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
	"warren/finparse/internal/taxonomy"
)

// Classification methods reported in results, for diagnostics.
const (
	MethodKeyword      = "keyword"
	MethodValueSign    = "value_sign"
	MethodAccountCode  = "account_code"
	MethodGenericVocab = "generic_vocabulary"
	MethodDefault      = "default"
)

// Tiered keyword scoring: an exact name match outweighs a prefix match,
// which outweighs a substring hit.
const (
	scoreExact     = 10
	scorePrefix    = 6
	scoreSubstring = 3
)

// Result is a local classification verdict.
type Result struct {
	Category   string
	IsInflow   bool
	Confidence int
	Reasoning  string
	Method     string
}

// Context carries optional hints for classification.
type Context struct {
	StatementType models.StatementType
}

// Classifier scores account names against the taxonomy keyword rules.
type Classifier struct {
	registry *taxonomy.Registry
	logger   logging.Logger
}

// NewClassifier creates a fallback classifier over the given registry.
func NewClassifier(registry *taxonomy.Registry, logger logging.Logger) *Classifier {
	return &Classifier{registry: registry, logger: logger}
}

// Classify assigns a category to an account name. value may be nil when
// the row carried no amount; ctx may be nil.
func (c *Classifier) Classify(name string, value *decimal.Decimal, ctx *Context) Result {
	normalized := normalize(name)

	if best, score := c.scoreKeywords(normalized); score > 0 {
		return c.applyValueSign(best, score, value)
	}

	// No keyword scored. Work through the secondary heuristics in order.
	if value != nil && value.IsNegative() {
		return Result{
			Category:   taxonomy.KeyOtherExpense,
			IsInflow:   false,
			Confidence: 70,
			Reasoning:  "no keyword match; negative value implies an expense",
			Method:     MethodValueSign,
		}
	}

	if r, ok := c.classifyByAccountCode(normalized); ok {
		return r
	}

	for _, word := range genericExpenseVocabulary {
		if strings.Contains(normalized, word) {
			return Result{
				Category:   taxonomy.KeyOtherExpense,
				IsInflow:   false,
				Confidence: 60,
				Reasoning:  fmt.Sprintf("generic expense vocabulary %q", word),
				Method:     MethodGenericVocab,
			}
		}
	}

	category := taxonomy.KeyOtherIncome
	isInflow := true
	if value != nil && value.IsNegative() {
		category = taxonomy.KeyOtherExpense
		isInflow = false
	}
	return Result{
		Category:   category,
		IsInflow:   isInflow,
		Confidence: 40,
		Reasoning:  "no signal found; default classification",
		Method:     MethodDefault,
	}
}

// scoreKeywords finds the best-scoring category for a normalized name.
func (c *Classifier) scoreKeywords(name string) (string, int) {
	bestKey := ""
	bestScore := 0

	for key, rule := range keywordRules {
		if _, ok := c.registry.Lookup(key); !ok {
			continue
		}
		if rule.excluded(name) {
			continue
		}
		score := 0
		for _, kw := range rule.keywords {
			switch {
			case name == kw:
				score += scoreExact
			case strings.HasPrefix(name, kw):
				score += scorePrefix
			case strings.Contains(name, kw):
				score += scoreSubstring
			}
		}
		if score > bestScore || (score == bestScore && score > 0 && key < bestKey) {
			bestKey = key
			bestScore = score
		}
	}
	return bestKey, bestScore
}

func (r keywordRule) excluded(name string) bool {
	for _, ex := range r.exclusions {
		if strings.Contains(name, ex) {
			return true
		}
	}
	return false
}

// applyValueSign folds the value sign into a keyword verdict. The sign is
// a secondary signal only: it can flip polarity or cap confidence, never
// pick the category.
func (c *Classifier) applyValueSign(category string, score int, value *decimal.Decimal) Result {
	def, _ := c.registry.Lookup(category)
	confidence := score + 75
	if confidence > 95 {
		confidence = 95
	}

	result := Result{
		Category:   category,
		IsInflow:   def.IsInflow,
		Confidence: confidence,
		Reasoning:  fmt.Sprintf("keyword match for %s", category),
		Method:     MethodKeyword,
	}

	if value == nil {
		return result
	}

	switch {
	case def.IsInflow && value.IsNegative():
		// Likely a refund or contra-revenue entry.
		result.IsInflow = false
		if result.Confidence > 60 {
			result.Confidence = 60
		}
		result.Reasoning += "; negative value on a revenue account, treated as contra entry"
	case !def.IsInflow && value.IsPositive():
		if result.Confidence > 65 {
			result.Confidence = 65
		}
		result.Reasoning += "; positive value on an expense account"
	}
	return result
}

// classifyByAccountCode applies chart-of-account numeric prefix
// conventions: 4xxx revenue, 5xxx cost of sales, 6xxx operating expense.
func (c *Classifier) classifyByAccountCode(name string) (Result, bool) {
	code := leadingDigits(name)
	if len(code) < 4 {
		return Result{}, false
	}
	switch code[0] {
	case '4':
		return Result{
			Category:   "sales_revenue",
			IsInflow:   true,
			Confidence: 80,
			Reasoning:  fmt.Sprintf("account code %s in the 4xxx revenue range", code),
			Method:     MethodAccountCode,
		}, true
	case '5':
		return Result{
			Category:   "cost_of_sales",
			IsInflow:   false,
			Confidence: 78,
			Reasoning:  fmt.Sprintf("account code %s in the 5xxx cost range", code),
			Method:     MethodAccountCode,
		}, true
	case '6':
		return Result{
			Category:   "operating_expense",
			IsInflow:   false,
			Confidence: 75,
			Reasoning:  fmt.Sprintf("account code %s in the 6xxx expense range", code),
			Method:     MethodAccountCode,
		}, true
	}
	return Result{}, false
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

// normalize lowercases and strips accents common in Spanish account
// names so dictionary entries can stay unaccented.
func normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	)
	return replacer.Replace(s)
}
