package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spendnote-dev/spendnote/internal/model"
)

// Filename returns the report name for a month, e.g. "transactions_2024_Nov.csv".
func Filename(year, month string) string {
	return fmt.Sprintf("transactions_%s_%s.csv", year, month)
}

// WriteFile writes the report to <dir>/transactions_<year>_<month>.csv and
// returns its path. A write failure is a hard failure for the run.
func WriteFile(dir, year, month string, records []model.Record) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := filepath.Join(dir, Filename(year, month))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := WriteRecords(f, records); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
