// Package mapper scores candidate categories for a single account name,
// using the enclosing section and locale keyword dictionaries. It backs
// interactive manual mapping flows and shares the keyword philosophy of
// the fallback classifier without issuing any external call.
package mapper

import (
	"fmt"
	"regexp"
	"strings"

	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
)

// Band grades how much a suggestion can be trusted.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// Score thresholds for the confidence bands.
const (
	highScore   = 10
	mediumScore = 5
)

// Match scores, strongest to weakest.
const (
	scoreExact           = 10
	scoreContains        = 5
	scoreReverseContains = 4
	scoreWordBoundary    = 3
)

// Section-context bonuses. A specific domain match (revenue, cost of
// sales, investing, financing) is worth more than a generic expense
// section.
const (
	bonusSpecificDomain = 3
	bonusGenericDomain  = 2
)

// Suggestion is one ranked category candidate for an account name.
type Suggestion struct {
	Category  models.CategoryDefinition
	Score     int
	Band      Band
	Reasoning string
}

// Mapper suggests categories for manual mapping.
type Mapper struct {
	logger logging.Logger
}

// NewMapper creates a Mapper.
func NewMapper(logger logging.Logger) *Mapper {
	return &Mapper{logger: logger}
}

// Suggest returns the best-scoring category for an account name, or nil
// when nothing scores above zero. requiredInflow, when set, excludes
// candidates of the opposite polarity outright, so accounts under an
// outflows section can never be suggested an inflow category.
func (m *Mapper) Suggest(accountName, sectionName string, available []models.CategoryDefinition, locale string, requiredInflow *bool) *Suggestion {
	name := normalize(accountName)
	if name == "" {
		return nil
	}
	domain, specific := sectionDomain(sectionName)

	var best *Suggestion
	for _, def := range available {
		if requiredInflow != nil && def.IsInflow != *requiredInflow {
			continue
		}

		score, matched := matchScore(name, candidateKeywords(def, locale))
		if score == 0 {
			continue
		}
		if domain != "" && def.Group == domain {
			if specific {
				score += bonusSpecificDomain
			} else {
				score += bonusGenericDomain
			}
		}

		if best == nil || score > best.Score {
			best = &Suggestion{
				Category:  def,
				Score:     score,
				Reasoning: fmt.Sprintf("matched %q", matched),
			}
		}
	}
	if best == nil {
		return nil
	}

	best.Band = band(best.Score)
	m.logger.WithFields(
		logging.Field{Key: logging.FieldAccount, Value: accountName},
		logging.Field{Key: logging.FieldCategory, Value: best.Category.Key},
		logging.Field{Key: "score", Value: best.Score},
		logging.Field{Key: "band", Value: best.Band},
	).Debug("Category suggested")
	return best
}

func band(score int) Band {
	switch {
	case score >= highScore:
		return BandHigh
	case score >= mediumScore:
		return BandMedium
	default:
		return BandLow
	}
}

// matchScore returns the strongest keyword match for the name: exact
// beats contains, which beats reverse-contains, which beats a
// word-boundary hit.
func matchScore(name string, keywords []string) (int, string) {
	bestScore, bestKeyword := 0, ""
	for _, kw := range keywords {
		kw = normalize(kw)
		if kw == "" {
			continue
		}
		score := 0
		switch {
		case name == kw:
			score = scoreExact
		case strings.Contains(name, kw):
			score = scoreContains
		case strings.Contains(kw, name):
			score = scoreReverseContains
		case wordBoundaryMatch(name, kw):
			score = scoreWordBoundary
		}
		if score > bestScore {
			bestScore, bestKeyword = score, kw
		}
	}
	return bestScore, bestKeyword
}

// wordBoundaryMatch reports whether the first word of the keyword
// appears as a whole word in the name.
func wordBoundaryMatch(name, keyword string) bool {
	first := strings.Fields(keyword)
	if len(first) == 0 {
		return false
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(first[0]) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(name)
}

// candidateKeywords merges the locale dictionary with the category's own
// label for that locale.
func candidateKeywords(def models.CategoryDefinition, locale string) []string {
	keywords := append([]string{}, localeKeywords[locale][def.Key]...)
	if label := def.Label(locale); label != "" {
		keywords = append(keywords, label)
	}
	return keywords
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

func normalize(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// sectionDomain infers a taxonomy group from a section label. specific
// is true for domains precise enough to deserve the larger bonus.
func sectionDomain(sectionName string) (domain string, specific bool) {
	section := normalize(sectionName)
	if section == "" {
		return "", false
	}
	switch {
	case strings.Contains(section, "cost of sales"),
		strings.Contains(section, "cost of goods"),
		strings.Contains(section, "costo de ventas"):
		return "cost_of_sales", true
	case strings.Contains(section, "investing"), strings.Contains(section, "inversion"):
		return "investing", true
	case strings.Contains(section, "financing"), strings.Contains(section, "financiamiento"):
		return "financing", true
	case strings.Contains(section, "revenue"), strings.Contains(section, "income"),
		strings.Contains(section, "ingresos"), strings.Contains(section, "ventas"):
		return "revenue", true
	case strings.Contains(section, "operating activities"),
		strings.Contains(section, "actividades de operacion"):
		return "operating", true
	case strings.Contains(section, "expense"), strings.Contains(section, "gastos"),
		strings.Contains(section, "operating"), strings.Contains(section, "operativ"):
		return "operating", false
	}
	return "", false
}
