package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendnote-dev/spendnote/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleRecords() []model.Record {
	return []model.Record{
		{
			Date:        "1 Nov 2024",
			Category:    model.CategoryFood,
			Description: "dinner",
			Outflow:     dec("9"),
		},
		{
			Date:        "6 Nov 2024",
			Category:    model.CategoryTax,
			Description: "tax",
			Outflow:     dec("123.45"),
			Payee:       "IRAS",
		},
	}
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRecords(&buf, sampleRecords())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Category,Description,Outflow ($),Payee", lines[0])
	assert.Equal(t, "1 Nov 2024,Food,dinner,9.00,", lines[1])
	assert.Equal(t, "6 Nov 2024,Tax,tax,123.45,IRAS", lines[2])
}

func TestWriteRecords_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRecords(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", buf.String())
}

func TestMarshalRecord_TwoDecimalPlaces(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"9", "9.00"},
		{"4.4", "4.40"},
		{"18.70", "18.70"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		rec := model.Record{
			Date:     "1 Nov 2024",
			Category: model.CategoryFood,
			Outflow:  dec(tt.input),
		}
		row := MarshalRecord(rec)
		assert.Equal(t, tt.want, row[colOutflow], "input %q", tt.input)
	}
}

func TestWriteRecords_QuotesCommasInDescription(t *testing.T) {
	rec := model.Record{
		Date:        "2 Nov 2024",
		Category:    model.CategoryChild,
		Description: "child. Taxi, hougang to pasir ris",
		Outflow:     dec("18.70"),
	}

	var buf bytes.Buffer
	err := WriteRecords(&buf, []model.Record{rec})
	require.NoError(t, err)

	cr := csv.NewReader(&buf)
	rows, err := cr.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, rec.Description, rows[1][colDesc])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "transactions_2024_Nov.csv", Filename("2024", "Nov"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(dir, "2024", "Nov", sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "transactions_2024_Nov.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header))
}

func TestWriteFile_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "2024")
	_, err := WriteFile(dir, "2024", "Nov", nil)
	require.NoError(t, err)
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	// A file where the output dir should be forces the failure path.
	blocker := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := WriteFile(blocker, "2024", "Nov", nil)
	require.Error(t, err)
}
