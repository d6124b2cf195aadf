package models

import "fmt"

// Category buckets a transaction into one of the app's ten preset categories.
// The labels are the display names used across the product (Chinese UI), so
// they double as the stored and serialized values.
type Category string

const (
	CategoryDining        Category = "餐饮"
	CategoryTransport     Category = "交通"
	CategoryShopping      Category = "购物"
	CategoryEntertainment Category = "娱乐"
	CategoryHousing       Category = "居住"
	CategoryMedical       Category = "医疗"
	CategoryEducation     Category = "教育"
	CategoryInvestment    Category = "投资"
	CategoryIncome        Category = "收入"
	CategoryOther         Category = "其他"
)

// categoryOrder fixes the presentation and scan order of categories.
var categoryOrder = []Category{
	CategoryDining,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHousing,
	CategoryMedical,
	CategoryEducation,
	CategoryInvestment,
	CategoryIncome,
	CategoryOther,
}

// Categories returns all categories in their fixed declaration order.
// The returned slice is a copy and safe to modify.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the ten known categories.
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory converts a stored label back into a Category.
func ParseCategory(label string) (Category, error) {
	c := Category(label)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", label)
	}
	return c, nil
}
