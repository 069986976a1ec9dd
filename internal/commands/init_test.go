package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendnote-dev/spendnote/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	err := runInit(dir)
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.Filename))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Month)
	assert.NotEmpty(t, cfg.Year)
	assert.Equal(t, "info", cfg.LogLevel)

	data, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "day header")
}

func TestRunInit_DoesNotClobberNotes(t *testing.T) {
	dir := t.TempDir()
	notesPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notesPath, []byte("1 nov\n   9 dinner\n"), 0o644))

	err := runInit(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(notesPath)
	require.NoError(t, err)
	assert.Equal(t, "1 nov\n   9 dinner\n", string(data))
}

func TestRunInit_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "expenses")
	err := runInit(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, config.Filename))
	require.NoError(t, err)
}
