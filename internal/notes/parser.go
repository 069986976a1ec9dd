// Package notes turns hand-typed daily expense notes into records.
//
// A notes blob is a sequence of date headers ("1 nov") each followed by
// indented transaction lines ("8.8 child lunch for 2"). Lines matching
// neither shape are noise and ignored.
package notes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/spendnote-dev/spendnote/internal/category"
	"github.com/spendnote-dev/spendnote/internal/model"
)

var (
	// dateLine matches a day-of-month plus a month name, full or 3-letter,
	// alone on the line. "May" is already its own abbreviation.
	dateLine = regexp.MustCompile(`(?i)^(0?[1-9]|[12][0-9]|3[01])\s+` +
		`(January|February|March|April|May|June|July|August|September|October|November|December|` +
		`Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec)$`)

	// amountLine captures a leading decimal amount and the rest as description.
	amountLine = regexp.MustCompile(`^([\d.]+)\s+(.*)$`)

	// splitMarker flags a bill shared N ways, e.g. "lunch for 2".
	splitMarker = regexp.MustCompile(`(?i)\bfor\s+(\d+)\b`)
)

// Result is the outcome of parsing one notes blob.
type Result struct {
	Records     []model.Record
	DatesFound  int
	SplitsFound int
}

// DailyParser parses the daily-notes dialect.
type DailyParser struct {
	year        string
	categorizer *category.Categorizer
	log         zerolog.Logger
}

// NewDailyParser creates a DailyParser. Transaction dates are stamped with
// the given year label; diagnostics go to log.
func NewDailyParser(year string, log zerolog.Logger) *DailyParser {
	return &DailyParser{
		year:        year,
		categorizer: category.Default(),
		log:         log,
	}
}

// Format returns the parser name.
func (p *DailyParser) Format() string { return "daily" }

// Parse scans the notes text line by line and returns all records in input
// order. Parsing is total: malformed lines are dropped (logged when they
// looked like transactions) and the pass never aborts. The active date is
// threaded through the loop; a transaction before the first date header
// cannot be placed and is dropped.
func (p *DailyParser) Parse(text string) Result {
	var res Result
	currentDate := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := dateLine.FindStringSubmatch(line); m != nil {
			currentDate = fmt.Sprintf("%s %s %s", m[1], capitalizeMonth(m[2]), p.year)
			res.DatesFound++
			p.log.Debug().Str("date", currentDate).Msg("date header recognized")
			continue
		}

		m := amountLine.FindStringSubmatch(line)
		if m == nil {
			continue // noise, not an error
		}

		amount, err := parseAmount(m[1])
		if err != nil {
			p.log.Error().Str("line", line).Str("date", currentDate).Msg("unparseable amount")
			continue
		}
		desc := m[2]

		if currentDate == "" {
			p.log.Error().Str("line", line).Msg("transaction before any date header")
			continue
		}

		if n, ok := splitCount(desc); ok {
			res.SplitsFound++
			p.log.Debug().Str("description", desc).Str("date", currentDate).Msg("split detected")
			personal, treat := category.Split(currentDate, desc, amount, n)
			res.Records = append(res.Records, personal, treat)
			continue
		}

		cat, payee := p.categorizer.Categorize(desc)
		res.Records = append(res.Records, model.Record{
			Date:        currentDate,
			Category:    cat,
			Description: desc,
			Outflow:     amount,
			Payee:       payee,
		})
	}

	return res
}

// parseAmount parses the leading token of a transaction line. A trailing
// bare point ("4.") is tolerated, matching how the notes get typed.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSuffix(s, "."))
}

// splitCount extracts N from a "for N" marker. N must be at least 1;
// "for 0" is nonsense and treated as a plain description.
func splitCount(desc string) (int64, bool) {
	m := splitMarker.FindStringSubmatch(desc)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// capitalizeMonth normalizes a month token as typed: "nov" -> "Nov",
// "NOVEMBER" -> "November".
func capitalizeMonth(m string) string {
	if m == "" {
		return m
	}
	return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
}
