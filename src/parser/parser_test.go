package parser

import (
	"reflect"
	"testing"
	"time"

	"github.com/username/galleon/backend/src/models"
)

// fixedClock pins "today" to 2024-03-15 so date resolution is deterministic.
func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
}

func newTestEngine() *Engine {
	return NewWithClock(fixedClock)
}

func TestParseNoSignal(t *testing.T) {
	engine := newTestEngine()
	for _, input := range []string{"", "   ", "\t\n", "乱七八糟", "hello world"} {
		if result := engine.Parse(input); result != nil {
			t.Errorf("Parse(%q): expected nil, got %+v", input, result)
		}
	}
}

func TestParseAmountOnly(t *testing.T) {
	engine := newTestEngine()
	result := engine.Parse("35")
	if result == nil {
		t.Fatal("Parse(\"35\"): expected a result")
	}
	if result.Amount != 35 {
		t.Errorf("amount: got %v, want 35", result.Amount)
	}
	if result.Type != models.TypeExpense {
		t.Errorf("type: got %q, want expense", result.Type)
	}
	if result.Confidence != 0.7 || result.NeedsReview {
		t.Errorf("confidence/needsReview: got %v/%v, want 0.7/false", result.Confidence, result.NeedsReview)
	}
	if result.Merchant != "" || result.Category != "" {
		t.Errorf("merchant/category should be absent, got %q/%q", result.Merchant, result.Category)
	}
	if result.Date != "2024-03-15" {
		t.Errorf("date should default to today, got %q", result.Date)
	}
	if result.ParsedDate != "" {
		t.Errorf("parsedDate should be absent, got %q", result.ParsedDate)
	}
}

func TestParseMerchantAndAmount(t *testing.T) {
	engine := newTestEngine()
	result := engine.Parse("星巴克 35")
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Amount != 35 {
		t.Errorf("amount: got %v, want 35", result.Amount)
	}
	if result.Merchant != "星巴克" {
		t.Errorf("merchant: got %q, want 星巴克", result.Merchant)
	}
	if result.Category != models.CategoryDining {
		t.Errorf("category: got %q, want %q", result.Category, models.CategoryDining)
	}
	if result.Confidence != 0.9 || result.NeedsReview {
		t.Errorf("confidence/needsReview: got %v/%v, want 0.9/false", result.Confidence, result.NeedsReview)
	}
}

func TestParseAliasResolvesToCanonicalMerchant(t *testing.T) {
	engine := newTestEngine()
	native := engine.Parse("星巴克 35")
	alias := engine.Parse("starbucks 35")
	if native == nil || alias == nil {
		t.Fatal("expected results for both spellings")
	}
	if alias.Merchant != native.Merchant {
		t.Errorf("alias merchant %q differs from canonical %q", alias.Merchant, native.Merchant)
	}
	if alias.Category != native.Category {
		t.Errorf("alias category %q differs from canonical %q", alias.Category, native.Category)
	}
}

func TestParseMerchantOnlyNoAmount(t *testing.T) {
	engine := newTestEngine()
	result := engine.Parse("星巴克")
	if result == nil {
		t.Fatal("merchant alone is enough signal for a result")
	}
	if result.Amount != 0 {
		t.Errorf("amount should be absent, got %v", result.Amount)
	}
	if result.Confidence != 0.5 || !result.NeedsReview {
		t.Errorf("confidence/needsReview: got %v/%v, want 0.5/true", result.Confidence, result.NeedsReview)
	}
}

func TestParseZeroAmountTreatedAsMissing(t *testing.T) {
	engine := newTestEngine()

	// A lone zero carries no usable signal at all.
	if result := engine.Parse("0元"); result != nil {
		t.Errorf("Parse(\"0元\"): expected nil, got %+v", result)
	}

	// With a merchant, the zero is dropped and the result needs review.
	result := engine.Parse("星巴克 0")
	if result == nil {
		t.Fatal("expected a merchant-only result")
	}
	if result.Amount != 0 {
		t.Errorf("amount should be absent, got %v", result.Amount)
	}
	if result.Confidence != 0.5 || !result.NeedsReview {
		t.Errorf("confidence/needsReview: got %v/%v, want 0.5/true", result.Confidence, result.NeedsReview)
	}
}

func TestParseIncomeKeyword(t *testing.T) {
	engine := newTestEngine()

	result := engine.Parse("退款 199")
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Type != models.TypeIncome {
		t.Errorf("type: got %q, want income", result.Type)
	}
	if result.Category != models.CategoryIncome {
		t.Errorf("category: got %q, want %q", result.Category, models.CategoryIncome)
	}
	if result.Merchant != "收入" {
		t.Errorf("merchant: got %q, want the generic income label", result.Merchant)
	}
	if result.Confidence != 0.7 {
		t.Errorf("confidence: got %v, want 0.7 (amount only, no concrete merchant)", result.Confidence)
	}

	salary := engine.Parse("工资 15000")
	if salary == nil || salary.Type != models.TypeIncome || salary.Category != models.CategoryIncome {
		t.Errorf("Parse(\"工资 15000\") = %+v, want income/收入", salary)
	}
}

func TestParseCategoryInference(t *testing.T) {
	engine := newTestEngine()
	result := engine.Parse("咖啡 35")
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Category != models.CategoryDining {
		t.Errorf("category: got %q, want %q", result.Category, models.CategoryDining)
	}
	if result.Merchant != "餐饮消费" {
		t.Errorf("merchant: got %q, want the generic dining label", result.Merchant)
	}
	if result.Confidence != 0.7 {
		t.Errorf("confidence: got %v, want 0.7 (no concrete merchant)", result.Confidence)
	}
}

func TestParseDateKeyword(t *testing.T) {
	engine := newTestEngine()
	result := engine.Parse("昨天打车28")
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Date != "2024-03-14" {
		t.Errorf("date: got %q, want 2024-03-14", result.Date)
	}
	if result.ParsedDate != "昨天" {
		t.Errorf("parsedDate: got %q, want 昨天", result.ParsedDate)
	}
	if result.Amount != 28 {
		t.Errorf("amount: got %v, want 28", result.Amount)
	}
	if result.Category != models.CategoryTransport {
		t.Errorf("category: got %q, want %q", result.Category, models.CategoryTransport)
	}
}

func TestParseDateKeywordVariants(t *testing.T) {
	engine := newTestEngine()
	tests := []struct {
		input      string
		date       string
		parsedDate string
	}{
		{"今天午饭 20", "2024-03-15", "今天"},
		{"today 麦当劳 45块", "2024-03-15", "today"},
		{"前天超市 89", "2024-03-13", "前天"},
		// "yesterday" is scanned before the long form, so the long English
		// phrase resolves to one day back rather than two.
		{"the day before yesterday bus 2", "2024-03-14", "yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := engine.Parse(tt.input)
			if result == nil {
				t.Fatalf("Parse(%q): expected a result", tt.input)
			}
			if result.Date != tt.date {
				t.Errorf("date: got %q, want %q", result.Date, tt.date)
			}
			if result.ParsedDate != tt.parsedDate {
				t.Errorf("parsedDate: got %q, want %q", result.ParsedDate, tt.parsedDate)
			}
		})
	}
}

func TestParseCurrencySuffixes(t *testing.T) {
	engine := newTestEngine()
	for _, input := range []string{"35元", "35 元", "¥35", "35rmb", "35块", "35YUAN"} {
		result := engine.Parse(input)
		if result == nil {
			t.Fatalf("Parse(%q): expected a result", input)
		}
		if result.Amount != 35 {
			t.Errorf("Parse(%q): amount %v, want 35", input, result.Amount)
		}
	}
}

func TestParseFirstDeclaredAliasWins(t *testing.T) {
	engine := newTestEngine()

	// 地铁 is declared before 公交; with both present the first wins.
	result := engine.Parse("地铁 公交 6")
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Merchant != "地铁" {
		t.Errorf("merchant: got %q, want 地铁 (declared first)", result.Merchant)
	}

	// Same for a canonical name against a later entry's alias.
	result = engine.Parse("滴滴 uber 30")
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Merchant != "滴滴" {
		t.Errorf("merchant: got %q, want 滴滴 (declared first)", result.Merchant)
	}
}

func TestParseNumericLookingMerchant(t *testing.T) {
	// The amount regex and the alias scan run over the same text without
	// coordination: "7-11" both names a merchant and starts with a digit.
	engine := newTestEngine()
	result := engine.Parse("7-11 买水 3")
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Merchant != "7-11" {
		t.Errorf("merchant: got %q, want 7-11", result.Merchant)
	}
	if result.Amount != 7 {
		t.Errorf("amount: got %v, want 7 (first number in scan order)", result.Amount)
	}
}

func TestParseDeterminism(t *testing.T) {
	engine := newTestEngine()
	first := engine.Parse("昨天 星巴克 35元")
	second := engine.Parse("昨天 星巴克 35元")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestParseBatch(t *testing.T) {
	engine := newTestEngine()
	inputs := []string{"星巴克 35", "", "工资 15000", "乱七八糟"}
	results := engine.ParseBatch(inputs)
	if len(results) != len(inputs) {
		t.Fatalf("got %d results for %d inputs", len(results), len(inputs))
	}
	if results[0] == nil || results[0].Merchant != "星巴克" {
		t.Errorf("results[0] = %+v, want 星巴克 result", results[0])
	}
	if results[1] != nil {
		t.Errorf("results[1] = %+v, want nil", results[1])
	}
	if results[2] == nil || results[2].Type != models.TypeIncome {
		t.Errorf("results[2] = %+v, want income result", results[2])
	}
	if results[3] != nil {
		t.Errorf("results[3] = %+v, want nil", results[3])
	}
}

func TestSuggestMerchants(t *testing.T) {
	engine := newTestEngine()

	if got := engine.SuggestMerchants(""); len(got) != 0 {
		t.Errorf("empty partial: got %v, want none", got)
	}

	got := engine.SuggestMerchants("star")
	if len(got) == 0 || got[0] != "星巴克" {
		t.Errorf("SuggestMerchants(\"star\") = %v, want 星巴克 first", got)
	}

	// Case-insensitive.
	upper := engine.SuggestMerchants("STAR")
	if !reflect.DeepEqual(got, upper) {
		t.Errorf("case sensitivity: %v vs %v", got, upper)
	}

	// "coffee" matches more than five dictionary entries; the list is capped
	// and keeps declaration order.
	coffee := engine.SuggestMerchants("coffee")
	if len(coffee) != 5 {
		t.Fatalf("SuggestMerchants(\"coffee\") returned %d entries, want 5", len(coffee))
	}
	if coffee[0] != "瑞幸" {
		t.Errorf("first coffee suggestion: got %q, want 瑞幸 (declared first)", coffee[0])
	}
}

func TestGenericMerchantName(t *testing.T) {
	engine := newTestEngine()
	if got := engine.GenericMerchantName(models.CategoryDining); got != "餐饮消费" {
		t.Errorf("dining: got %q, want 餐饮消费", got)
	}
	if got := engine.GenericMerchantName(models.Category("nope")); got != "其他消费" {
		t.Errorf("unknown category: got %q, want the catch-all label", got)
	}
}

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		hasAmount, hasMerchant bool
		confidence             float64
		needsReview            bool
	}{
		{true, true, 0.9, false},
		{true, false, 0.7, false},
		{false, true, 0.5, true},
		{false, false, 0.5, true},
	}
	for _, tt := range tests {
		confidence, needsReview := scoreConfidence(tt.hasAmount, tt.hasMerchant)
		if confidence != tt.confidence || needsReview != tt.needsReview {
			t.Errorf("scoreConfidence(%v, %v) = (%v, %v), want (%v, %v)",
				tt.hasAmount, tt.hasMerchant, confidence, needsReview, tt.confidence, tt.needsReview)
		}
	}
}
