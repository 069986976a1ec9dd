package category

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendnote-dev/spendnote/internal/model"
)

// Split divides a shared bill into a personal share and a treat share.
//
// The amount is split N ways: one share is the author's own, the rest was
// treated to others. The personal share is always filed under Food; the treat
// share goes to Gift/Treats, or to child when the note mentions a child and
// the bill was split two ways. The two shares sum to the original amount up
// to rounding.
func Split(date, desc string, amount decimal.Decimal, n int64) (personal, treat model.Record) {
	pax := decimal.NewFromInt(n)
	personalPortion := amount.Div(pax).Round(2)
	treatPortion := amount.Mul(decimal.NewFromInt(n - 1)).Div(pax).Round(2)

	treatCategory := model.CategoryGiftTreats
	if n == 2 && strings.Contains(strings.ToLower(desc), "child") {
		treatCategory = model.CategoryChild
	}

	personal = model.Record{
		Date:        date,
		Category:    model.CategoryFood,
		Description: desc + " (personal)",
		Outflow:     personalPortion,
	}
	treat = model.Record{
		Date:        date,
		Category:    treatCategory,
		Description: desc + " (treat)",
		Outflow:     treatPortion,
	}
	return personal, treat
}
