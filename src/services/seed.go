package services

import (
	"fmt"
	"time"

	"github.com/username/galleon/backend/src/database"
	"github.com/username/galleon/backend/src/logger"
	"github.com/username/galleon/backend/src/models"
	"github.com/username/galleon/backend/src/utils"
)

type seedRecord struct {
	Amount      float64
	Type        models.TransactionType
	Category    models.Category
	Merchant    string
	Description string
	DaysAgo     int
}

// A small realistic ledger spanning the past month, for demos and first runs.
var seedRecords = []seedRecord{
	{38, models.TypeExpense, models.CategoryDining, "星巴克", "星巴克 拿铁 38", 0},
	{25, models.TypeExpense, models.CategoryDining, "麦当劳", "麦当劳 套餐 25", 1},
	{268, models.TypeExpense, models.CategoryDining, "海底捞", "海底捞 火锅 268", 3},
	{28, models.TypeExpense, models.CategoryDining, "瑞幸", "瑞幸咖啡 大杯拿铁 28", 5},
	{88, models.TypeExpense, models.CategoryDining, "必胜客", "必胜客 披萨 88", 10},
	{28, models.TypeExpense, models.CategoryTransport, "滴滴", "滴滴打车 28", 0},
	{6, models.TypeExpense, models.CategoryTransport, "地铁", "地铁 6", 2},
	{156, models.TypeExpense, models.CategoryTransport, "火车", "高铁 上海-南京 156", 7},
	{320, models.TypeExpense, models.CategoryTransport, "加油", "加油 320", 9},
	{299, models.TypeExpense, models.CategoryShopping, "淘宝", "淘宝 冬季外套 299", 2},
	{599, models.TypeExpense, models.CategoryShopping, "京东", "京东 机械键盘 599", 5},
	{398, models.TypeExpense, models.CategoryShopping, "优衣库", "优衣库 毛衣 398", 13},
	{75, models.TypeExpense, models.CategoryEntertainment, "电影院", "电影院 75", 3},
	{68, models.TypeExpense, models.CategoryEntertainment, "Steam", "Steam 游戏 68", 19},
	{4500, models.TypeExpense, models.CategoryHousing, "房租", "房租 月付 4500", 1},
	{68, models.TypeExpense, models.CategoryHousing, "水电", "电费 68", 6},
	{85, models.TypeExpense, models.CategoryMedical, "药店", "感冒药 85", 4},
	{199, models.TypeExpense, models.CategoryEducation, "在线课程", "极客时间 专栏 199", 7},
	{1000, models.TypeExpense, models.CategoryInvestment, "基金", "基金定投 1000", 1},
	{18000, models.TypeIncome, models.CategoryIncome, "公司", "月薪 18000", 0},
	{500, models.TypeIncome, models.CategoryIncome, "收入", "报销 500", 8},
}

// SeedDemoData inserts the demo ledger when the transactions table is empty.
// Seed rows carry the is_seed flag so ClearSeedData can remove them without
// touching user records.
func SeedDemoData(now func() time.Time) error {
	var count int
	if err := database.DB.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return fmt.Errorf("checking for existing transactions: %w", err)
	}
	if count > 0 {
		logger.L.Info("Skipping demo seed, ledger is not empty", "existing", count)
		return nil
	}

	nowStr := now().UTC().Format(time.RFC3339)
	for _, r := range seedRecords {
		date := utils.FormatISODate(now().AddDate(0, 0, -r.DaysAgo))
		tx := &models.Transaction{
			Amount:      r.Amount,
			Type:        r.Type,
			Category:    r.Category,
			Merchant:    r.Merchant,
			Description: r.Description,
			Date:        date,
			Confidence:  1,
			IsSeed:      true,
		}
		_, err := database.DB.Exec(`
			INSERT INTO transactions
				(amount, type, category, merchant, description, date, confidence, needs_review, is_seed, hash_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			tx.Amount, string(tx.Type), string(tx.Category), tx.Merchant, tx.Description,
			tx.Date, tx.Confidence, tx.NeedsReview, tx.IsSeed, transactionHash(tx), nowStr, nowStr)
		if err != nil {
			return fmt.Errorf("inserting seed record %q: %w", tx.Description, err)
		}
	}
	logger.L.Info("Demo ledger seeded", "records", len(seedRecords))
	return nil
}
