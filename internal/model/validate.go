package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError describes a single invariant violation on a record.
type ValidationError struct {
	Row         int // 1-based position in the record sequence
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Row, e.Description)
}

var knownCategories = func() map[Category]bool {
	m := make(map[Category]bool)
	for _, c := range Categories() {
		m[c] = true
	}
	return m
}()

// ValidateRecords enforces the record invariants on a parsed sequence:
// every record has a date, a known category, and a non-negative outflow
// with at most two decimal places.
func ValidateRecords(records []Record) []ValidationError {
	var errs []ValidationError
	hundred := decimal.NewFromInt(100)

	for i, rec := range records {
		row := i + 1

		if rec.Date == "" {
			errs = append(errs, ValidationError{
				Row:         row,
				Description: "missing date",
			})
		}

		if !knownCategories[rec.Category] {
			errs = append(errs, ValidationError{
				Row:         row,
				Description: fmt.Sprintf("unknown category %q", rec.Category),
			})
		}

		if rec.Outflow.IsNegative() {
			errs = append(errs, ValidationError{
				Row:         row,
				Description: fmt.Sprintf("negative outflow %s", rec.Outflow),
			})
		}

		cents := rec.Outflow.Mul(hundred)
		if !cents.Equal(cents.Floor()) {
			errs = append(errs, ValidationError{
				Row:         row,
				Description: fmt.Sprintf("outflow %s has more than 2 decimal places", rec.Outflow),
			})
		}
	}

	return errs
}
