package services

import (
	"errors"

	"github.com/username/galleon/backend/src/models"
)

var (
	ErrUnparsableInput     = errors.New("input has no usable transaction signal")
	ErrAmountRequired      = errors.New("a positive amount is required")
	ErrDuplicateSubmission = errors.New("identical transaction submitted moments ago")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrValidationFailed    = errors.New("transaction validation failed")
)

// SelectionInput is the structured creation path: the user picked a category
// (and optionally a brand) instead of typing free text, so no parsing happens.
// An empty Merchant is filled with the category's generic merchant label; an
// empty Date defaults to today.
type SelectionInput struct {
	Amount      float64                `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Category    models.Category        `json:"category"`
	Merchant    string                 `json:"merchant"`
	Description string                 `json:"description"`
	Date        string                 `json:"date"`
}

// LedgerSummary aggregates a date range of the ledger.
type LedgerSummary struct {
	Start      string                     `json:"start"`
	End        string                     `json:"end"`
	Income     float64                    `json:"income"`
	Expense    float64                    `json:"expense"`
	Net        float64                    `json:"net"`
	Count      int                        `json:"count"`
	ByCategory map[models.Category]float64 `json:"byCategory"` // expense totals per category
}

// LedgerService is the record-creation and query surface around the parser
// engine and the transaction store.
type LedgerService interface {
	CreateFromText(text string) (*models.Transaction, error)
	CreateFromSelection(input SelectionInput) (*models.Transaction, error)
	GetTransaction(id int64) (*models.Transaction, error)
	ListByDateRange(start, end string) ([]models.Transaction, error)
	SummaryByDateRange(start, end string) (*LedgerSummary, error)
	DeleteTransaction(id int64) error
	ClearSeedData() (int64, error)
}
