// Package parser implements the rule-based natural-language parsing engine
// that turns free-form entry text ("星巴克 35", "昨天打车28") into a structured
// transaction candidate. It performs no I/O and keeps no mutable state: the
// dictionaries are built once at construction and only read afterwards, so an
// Engine is safe for concurrent use.
package parser

import (
	"strings"
	"time"

	"github.com/username/galleon/backend/src/models"
)

// maxSuggestions bounds the merchant suggestion list.
const maxSuggestions = 5

// Engine is the parsing engine. The clock is injectable so relative-date
// resolution ("昨天") and the default date are deterministic under test.
type Engine struct {
	index *aliasIndex
	now   func() time.Time
}

// New returns an Engine using the wall clock.
func New() *Engine {
	return NewWithClock(time.Now)
}

// NewWithClock returns an Engine whose notion of "today" comes from now.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{index: buildAliasIndex(), now: now}
}

// Parse converts one line of free text into a ParseResult. It returns nil
// when the input is empty after trimming, or when neither an amount nor a
// merchant could be found (insufficient signal for a transaction).
//
// Category is left unset when neither a merchant nor a category keyword
// matched; the record-creation layer applies the type-based default.
func (e *Engine) Parse(text string) *models.ParseResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	lower := strings.ToLower(trimmed)

	amount, matched := extractAmount(trimmed)
	merchant, category, merchantFound := e.resolveMerchant(lower)
	date, dateKeyword, dateFound := e.resolveDate(lower)
	txType := classifyType(lower)

	// A matched 0 counts as "no amount": zero-value records are not actionable.
	hasAmount := matched && amount > 0
	if !hasAmount && !merchantFound {
		return nil
	}

	confidence, needsReview := scoreConfidence(hasAmount, merchantFound)
	result := &models.ParseResult{
		Type:        txType,
		Confidence:  confidence,
		NeedsReview: needsReview,
	}
	if hasAmount {
		result.Amount = amount
	}
	if merchantFound {
		result.Merchant = merchant
		result.Category = category
	} else if inferred, ok := inferCategory(lower); ok {
		result.Category = inferred
		result.Merchant = genericMerchantNames[inferred]
	}
	if dateFound {
		result.Date = date
		result.ParsedDate = dateKeyword
	} else {
		result.Date = e.now().Format(models.ISODateFormat)
	}
	return result
}

// ParseBatch applies Parse to each input independently. The returned slice
// has the same length as inputs; entries are nil where Parse returned nil.
func (e *Engine) ParseBatch(inputs []string) []*models.ParseResult {
	results := make([]*models.ParseResult, len(inputs))
	for i, input := range inputs {
		results[i] = e.Parse(input)
	}
	return results
}

// SuggestMerchants returns up to five canonical merchant names whose name or
// any alias contains partial (case-insensitive), in dictionary declaration
// order. An empty partial yields no suggestions.
func (e *Engine) SuggestMerchants(partial string) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" {
		return nil
	}
	var suggestions []string
	for _, entry := range merchantDict {
		if len(suggestions) == maxSuggestions {
			break
		}
		if merchantMatches(entry, partial) {
			suggestions = append(suggestions, entry.Name)
		}
	}
	return suggestions
}

func merchantMatches(entry merchantEntry, partial string) bool {
	if strings.Contains(strings.ToLower(entry.Name), partial) {
		return true
	}
	for _, alias := range entry.Aliases {
		if strings.Contains(strings.ToLower(alias), partial) {
			return true
		}
	}
	return false
}

// GenericMerchantName exposes the category→placeholder table for callers that
// synthesize a merchant label outside the parser, such as the structured
// quick-tag creation path. Unknown categories fall back to the catch-all label.
func (e *Engine) GenericMerchantName(category models.Category) string {
	if name, ok := genericMerchantNames[category]; ok {
		return name
	}
	return genericMerchantNames[models.CategoryOther]
}
