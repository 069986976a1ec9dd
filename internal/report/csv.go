// Package report writes parsed records as the budget-sheet CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spendnote-dev/spendnote/internal/model"
)

// Header is the CSV header row for the transactions report.
const Header = "Date,Category,Description,Outflow ($),Payee"

const (
	numFields  = 5
	colDate    = 0
	colCat     = 1
	colDesc    = 2
	colOutflow = 3
	colPayee   = 4
)

// WriteRecords writes records to a CSV writer (including header).
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row ([]string).
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colDate] = rec.Date
	row[colCat] = string(rec.Category)
	row[colDesc] = rec.Description
	row[colOutflow] = rec.Outflow.StringFixed(2)
	row[colPayee] = rec.Payee
	return row
}
