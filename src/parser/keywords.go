package parser

import "github.com/username/galleon/backend/src/models"

// currencySuffixes are the markers that may trail an amount ("35元", "35rmb").
// Matching is case-insensitive, so "RMB" is covered by "rmb".
var currencySuffixes = []string{"元", "块", "¥", "yuan", "rmb"}

// incomeKeywords flip the transaction type to income when present anywhere in
// the input. Stored lowercased; the classifier scans lowercased text.
var incomeKeywords = []string{
	"工资", "salary", "收入", "入账", "转账", "退款", "报销", "奖金", "分红", "理财",
	"wage", "income", "deposit", "refund", "reimbursement", "bonus", "dividend",
}

// categoryRule attaches free-text trigger phrases to a category. Used only
// when no merchant alias matched; scanned in declaration order, first matching
// phrase wins. The catch-all category declares no triggers.
type categoryRule struct {
	Category models.Category
	Keywords []string
}

var categoryKeywords = []categoryRule{
	{models.CategoryDining, []string{"咖啡", "奶茶", "吃饭", "餐厅", "食堂", "外卖", "午餐", "晚餐", "早餐", "food", "coffee", "tea", "milk tea", "lunch", "dinner", "breakfast"}},
	{models.CategoryTransport, []string{"打车", "地铁", "公交", "taxi", "subway", "bus", "transport", "出行"}},
	{models.CategoryShopping, []string{"买东西", "购物", "shopping", "买"}},
	{models.CategoryEntertainment, []string{"电影", "游戏", "movie", "game", "娱乐", "entertainment"}},
	{models.CategoryHousing, []string{"房租", "水电", "宽带", "话费", "rent", "utilities"}},
	{models.CategoryMedical, []string{"医院", "药店", "看病", "hospital", "pharmacy", "medical"}},
	{models.CategoryEducation, []string{"学费", "书", "课程", "tuition", "book", "course", "education"}},
	{models.CategoryInvestment, []string{"股票", "基金", "保险", "stock", "fund", "insurance", "investment"}},
	{models.CategoryIncome, []string{"工资", "奖金", "兼职", "红包", "退款", "报销", "转账", "中奖", "salary", "bonus", "refund", "reimbursement", "income"}},
	{models.CategoryOther, nil},
}

// genericMerchantNames supplies a human-readable merchant placeholder per
// category for results where a category was inferred but no concrete merchant
// was named.
var genericMerchantNames = map[models.Category]string{
	models.CategoryDining:        "餐饮消费",
	models.CategoryTransport:     "交通出行",
	models.CategoryShopping:      "购物消费",
	models.CategoryEntertainment: "娱乐消费",
	models.CategoryHousing:       "居住费用",
	models.CategoryMedical:       "医疗费用",
	models.CategoryEducation:     "教育支出",
	models.CategoryInvestment:    "投资理财",
	models.CategoryIncome:        "收入",
	models.CategoryOther:         "其他消费",
}

// dateKeyword maps a relative-date phrase to its day offset from today.
type dateKeyword struct {
	Keyword string
	Offset  int
}

// dateKeywords are scanned in declaration order, first match wins. Note that
// "yesterday" is scanned before the long English form, so "the day before
// yesterday" resolves to an offset of -1; the Chinese 前天 resolves correctly.
var dateKeywords = []dateKeyword{
	{"今天", 0},
	{"today", 0},
	{"昨天", -1},
	{"yesterday", -1},
	{"前天", -2},
	{"the day before yesterday", -2},
}
