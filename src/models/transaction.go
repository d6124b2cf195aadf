package models

import (
	"errors"
	"fmt"
	"time"
)

// ISODateFormat is the layout for all dates stored and exchanged by the app.
const ISODateFormat = "2006-01-02"

// TransactionType distinguishes money going out from money coming in.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// ParseResult is the outcome of running the rule-based parser over one line
// of free text. Amount, Category, Merchant and ParsedDate may be absent
// (zero value); Type, Date, Confidence and NeedsReview are always set.
type ParseResult struct {
	Amount      float64         `json:"amount,omitempty"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category,omitempty"`
	Merchant    string          `json:"merchant,omitempty"`
	Date        string          `json:"date"`
	ParsedDate  string          `json:"parsedDate,omitempty"`
	Confidence  float64         `json:"confidence"`
	NeedsReview bool            `json:"needsReview"`
}

// Transaction is a persisted ledger record.
type Transaction struct {
	ID          int64           `json:"id"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	Merchant    string          `json:"merchant"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Confidence  float64         `json:"confidence"`
	NeedsReview bool            `json:"needsReview"`
	IsSeed      bool            `json:"-"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

var (
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrMerchantRequired  = errors.New("merchant name is required")
)

// Validate enforces the record invariants at the persistence boundary:
// a strictly positive amount, a known type and category, a non-empty
// merchant label, an ISO date and a confidence score in [0,1].
func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return ErrAmountNotPositive
	}
	if !t.Type.Valid() {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("invalid category %q", t.Category)
	}
	if t.Merchant == "" {
		return ErrMerchantRequired
	}
	if _, err := time.Parse(ISODateFormat, t.Date); err != nil {
		return fmt.Errorf("invalid date %q: must be YYYY-MM-DD", t.Date)
	}
	if t.Confidence < 0 || t.Confidence > 1 {
		return fmt.Errorf("confidence %v out of range [0,1]", t.Confidence)
	}
	return nil
}
