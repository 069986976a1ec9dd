// Package category assigns budget categories to expense descriptions.
//
// Categorization is deterministic: an ordered rule table, first match wins,
// case-insensitive substring tests against the whole description. The final
// rule matches everything, so every description gets a category.
package category

import (
	"strings"

	"github.com/spendnote-dev/spendnote/internal/model"
)

// Rule maps descriptions containing any of its keywords to a category.
type Rule struct {
	Keywords []string // case-insensitive substrings; empty = match everything
	Category model.Category
	Payee    string

	// PayeeByKeyword overrides Payee when a specific keyword is present,
	// e.g. the internet bill always goes to Starhub.
	PayeeByKeyword map[string]string
}

func (r Rule) matches(desc string) bool {
	if len(r.Keywords) == 0 {
		return true
	}
	for _, kw := range r.Keywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

func (r Rule) payee(desc string) string {
	for kw, p := range r.PayeeByKeyword {
		if strings.Contains(desc, kw) {
			return p
		}
	}
	return r.Payee
}

// DefaultRules returns the rule table in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Keywords: []string{"child"}, Category: model.CategoryChild},
		{Keywords: []string{"dad"}, Category: model.CategoryDad, Payee: "Dad"},
		{
			Keywords:       []string{"hougang", "utilities", "internet"},
			Category:       model.CategoryHousehold,
			PayeeByKeyword: map[string]string{"internet": "Starhub"},
		},
		{Keywords: []string{"gift", "treat"}, Category: model.CategoryGiftTreats},
		{Keywords: []string{"lunch", "dinner", "breakfast"}, Category: model.CategoryFood},
		{Keywords: []string{"taxi", "grab", "bus", "mrt"}, Category: model.CategoryTransport},
		{Keywords: []string{"tax"}, Category: model.CategoryTax, Payee: "IRAS"},
		{Keywords: []string{"mobile", "bill", "chatgpt"}, Category: model.CategoryBills},
		{Keywords: []string{"snacks", "drinks"}, Category: model.CategoryLeisure},
		{Category: model.CategoryOthers},
	}
}

// Categorizer evaluates an ordered rule table.
type Categorizer struct {
	rules []Rule
}

// New creates a Categorizer over the given rules, evaluated in order.
func New(rules []Rule) *Categorizer {
	return &Categorizer{rules: rules}
}

// Default returns a Categorizer with the built-in rule table.
func Default() *Categorizer {
	return New(DefaultRules())
}

// Categorize returns the category and payee for a description.
// The catch-all rule guarantees a result for any input.
func (c *Categorizer) Categorize(desc string) (model.Category, string) {
	lowered := strings.ToLower(desc)
	for _, r := range c.rules {
		if r.matches(lowered) {
			return r.Category, r.payee(lowered)
		}
	}
	return model.CategoryOthers, ""
}
