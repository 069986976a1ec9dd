package model

import (
	"github.com/shopspring/decimal"
)

// Category classifies a record for the budget sheet.
type Category string

const (
	CategoryChild      Category = "child"
	CategoryDad        Category = "Dad"
	CategoryHousehold  Category = "Household"
	CategoryGiftTreats Category = "Gift/Treats"
	CategoryFood       Category = "Food"
	CategoryTransport  Category = "Transport"
	CategoryTax        Category = "Tax"
	CategoryBills      Category = "Bills"
	CategoryLeisure    Category = "Leisure"
	CategoryOthers     Category = "Others"
)

// Categories returns every category a record may carry.
func Categories() []Category {
	return []Category{
		CategoryChild,
		CategoryDad,
		CategoryHousehold,
		CategoryGiftTreats,
		CategoryFood,
		CategoryTransport,
		CategoryTax,
		CategoryBills,
		CategoryLeisure,
		CategoryOthers,
	}
}

// Record is one categorized transaction, a single row of the report.
// Records are built once during a parse and not mutated afterwards.
type Record struct {
	Date        string // "3 Nov 2024" — the note's day header plus the configured year
	Category    Category
	Description string
	Outflow     decimal.Decimal // non-negative, two decimal places
	Payee       string          // empty unless a rule names one
}
