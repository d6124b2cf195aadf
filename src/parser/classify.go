package parser

import (
	"strings"

	"github.com/username/galleon/backend/src/models"
)

// classifyType returns income when any income keyword appears as a substring
// of the lowercased input, expense otherwise. There is no negation handling;
// "不是退款" still classifies as income.
func classifyType(lower string) models.TransactionType {
	for _, keyword := range incomeKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return models.TypeIncome
		}
	}
	return models.TypeExpense
}
