package services

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/galleon/backend/src/database"
	"github.com/username/galleon/backend/src/logger"
	"github.com/username/galleon/backend/src/models"
	"github.com/username/galleon/backend/src/parser"
	"github.com/username/galleon/backend/src/utils"
)

const (
	ckSummary    = "res_summary_%s_%s"
	ckRecentHash = "recent_hash_"

	// unknownMerchantName labels records the parser could not attach any
	// merchant or category signal to.
	unknownMerchantName = "未知商家"
)

type ledgerServiceImpl struct {
	engine *parser.Engine

	// summaryCache holds computed range summaries; flushed on every write.
	// recentCache holds content hashes of recent inserts for the
	// duplicate-submission window.
	summaryCache *cache.Cache
	recentCache  *cache.Cache

	now func() time.Time
}

// NewLedgerService wires the parser engine and the two caches into a
// LedgerService backed by the global database handle.
func NewLedgerService(engine *parser.Engine, summaryCache, recentCache *cache.Cache) LedgerService {
	return &ledgerServiceImpl{
		engine:       engine,
		summaryCache: summaryCache,
		recentCache:  recentCache,
		now:          time.Now,
	}
}

// CreateFromText is the quick-add path: parse the free text and persist the
// result. The caller-level defaults live here, not in the parser: an
// unresolved category becomes 收入 for income and 其他 otherwise, and a
// missing merchant label becomes the unknown-merchant placeholder.
func (s *ledgerServiceImpl) CreateFromText(text string) (*models.Transaction, error) {
	result := s.engine.Parse(text)
	if result == nil {
		return nil, ErrUnparsableInput
	}
	if result.Amount <= 0 {
		return nil, fmt.Errorf("%w: quick-add requires an amount", ErrAmountRequired)
	}

	category := result.Category
	if category == "" {
		if result.Type == models.TypeIncome {
			category = models.CategoryIncome
		} else {
			category = models.CategoryOther
		}
	}
	merchant := result.Merchant
	if merchant == "" {
		merchant = unknownMerchantName
	}

	tx := &models.Transaction{
		Amount:      result.Amount,
		Type:        result.Type,
		Category:    category,
		Merchant:    merchant,
		Description: strings.TrimSpace(text),
		Date:        result.Date,
		Confidence:  result.Confidence,
		NeedsReview: result.NeedsReview,
	}
	return s.insert(tx)
}

// CreateFromSelection persists a record built from a structured selection
// (quick-tag or brand picker), bypassing the parser entirely.
func (s *ledgerServiceImpl) CreateFromSelection(input SelectionInput) (*models.Transaction, error) {
	txType := input.Type
	if txType == "" {
		txType = models.TypeExpense
	}
	merchant := input.Merchant
	if merchant == "" {
		merchant = s.engine.GenericMerchantName(input.Category)
	}
	date := input.Date
	if date == "" {
		date = utils.FormatISODate(s.now())
	}

	tx := &models.Transaction{
		Amount:      input.Amount,
		Type:        txType,
		Category:    input.Category,
		Merchant:    merchant,
		Description: input.Description,
		Date:        date,
		Confidence:  1,
		NeedsReview: false,
	}
	return s.insert(tx)
}

func (s *ledgerServiceImpl) insert(tx *models.Transaction) (*models.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	// Duplicate-submission detection: an identical record hash seen within
	// the recent window means a double tap or a retried request, not a
	// second purchase.
	hash := transactionHash(tx)
	dupKey := ckRecentHash + hash
	if _, found := s.recentCache.Get(dupKey); found {
		logger.L.Warn("Rejected duplicate submission", "merchant", tx.Merchant, "amount", tx.Amount, "date", tx.Date)
		return nil, ErrDuplicateSubmission
	}

	nowStr := s.now().UTC().Format(time.RFC3339)
	tx.CreatedAt = nowStr
	tx.UpdatedAt = nowStr

	res, err := database.DB.Exec(`
		INSERT INTO transactions
			(amount, type, category, merchant, description, date, confidence, needs_review, is_seed, hash_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.Amount, string(tx.Type), string(tx.Category), tx.Merchant, tx.Description,
		tx.Date, tx.Confidence, tx.NeedsReview, tx.IsSeed, hash, tx.CreatedAt, tx.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted transaction id: %w", err)
	}
	tx.ID = id

	s.recentCache.Set(dupKey, struct{}{}, cache.DefaultExpiration)
	s.summaryCache.Flush()

	logger.L.Info("Transaction created",
		"id", tx.ID, "merchant", tx.Merchant, "category", tx.Category,
		"amount", tx.Amount, "confidence", tx.Confidence)
	return tx, nil
}

func (s *ledgerServiceImpl) GetTransaction(id int64) (*models.Transaction, error) {
	row := database.DB.QueryRow(`
		SELECT id, amount, type, category, merchant, description, date,
			confidence, needs_review, is_seed, created_at, updated_at
		FROM transactions WHERE id = ?`, id)
	tx, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying transaction %d: %w", id, err)
	}
	return tx, nil
}

func (s *ledgerServiceImpl) ListByDateRange(start, end string) ([]models.Transaction, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	rows, err := database.DB.Query(`
		SELECT id, amount, type, category, merchant, description, date,
			confidence, needs_review, is_seed, created_at, updated_at
		FROM transactions
		WHERE date BETWEEN ? AND ?
		ORDER BY date DESC, id DESC`, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying transactions in [%s, %s]: %w", start, end, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		transactions = append(transactions, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return transactions, nil
}

func (s *ledgerServiceImpl) SummaryByDateRange(start, end string) (*LedgerSummary, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf(ckSummary, start, end)
	if cached, found := s.summaryCache.Get(cacheKey); found {
		if summary, ok := cached.(*LedgerSummary); ok {
			logger.L.Debug("Summary cache hit", "start", start, "end", end)
			return summary, nil
		}
	}

	transactions, err := s.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	summary := &LedgerSummary{
		Start:      start,
		End:        end,
		Count:      len(transactions),
		ByCategory: make(map[models.Category]float64),
	}
	for _, tx := range transactions {
		if tx.Type == models.TypeIncome {
			summary.Income += tx.Amount
		} else {
			summary.Expense += tx.Amount
			summary.ByCategory[tx.Category] += tx.Amount
		}
	}
	summary.Net = summary.Income - summary.Expense

	s.summaryCache.Set(cacheKey, summary, cache.DefaultExpiration)
	return summary, nil
}

func (s *ledgerServiceImpl) DeleteTransaction(id int64) error {
	res, err := database.DB.Exec(`DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result for transaction %d: %w", id, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	s.summaryCache.Flush()
	logger.L.Info("Transaction deleted", "id", id)
	return nil
}

// ClearSeedData removes the demo records inserted by SeedDemoData and returns
// how many were deleted. User-entered records are untouched.
func (s *ledgerServiceImpl) ClearSeedData() (int64, error) {
	res, err := database.DB.Exec(`DELETE FROM transactions WHERE is_seed = TRUE`)
	if err != nil {
		return 0, fmt.Errorf("clearing seed data: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking seed delete result: %w", err)
	}
	if affected > 0 {
		s.summaryCache.Flush()
	}
	return affected, nil
}

func validateRange(start, end string) error {
	startDay, err := utils.ParseISODate(start)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	endDay, err := utils.ParseISODate(end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	if endDay.Before(startDay) {
		return fmt.Errorf("%w: range end %s is before start %s", ErrValidationFailed, end, start)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var tx models.Transaction
	var txType, category string
	err := row.Scan(
		&tx.ID, &tx.Amount, &txType, &category, &tx.Merchant, &tx.Description,
		&tx.Date, &tx.Confidence, &tx.NeedsReview, &tx.IsSeed, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return nil, err
	}
	tx.Type = models.TransactionType(txType)
	tx.Category = models.Category(category)
	return &tx, nil
}

// transactionHash fingerprints the record content for the duplicate-submission
// window. Two submissions with the same date, type, amount, merchant and
// description collide on purpose.
func transactionHash(tx *models.Transaction) string {
	payload := fmt.Sprintf("%s|%s|%.2f|%s|%s", tx.Date, tx.Type, tx.Amount, tx.Merchant, tx.Description)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
