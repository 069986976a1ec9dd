package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendnote-dev/spendnote/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Set up a notes directory with a default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

const notesSkeleton = `# Type one day header per line ("3 nov"), then one expense per line
# below it: amount first, description after ("8.8 child lunch for 2").
`

func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default(time.Now())
	if err := config.Save(filepath.Join(dir, config.Filename), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	notesPath := filepath.Join(dir, "notes.txt")
	if _, err := os.Stat(notesPath); os.IsNotExist(err) {
		if err := os.WriteFile(notesPath, []byte(notesSkeleton), 0o644); err != nil {
			return fmt.Errorf("writing notes skeleton: %w", err)
		}
	}

	fmt.Printf("Initialized spendnote directory at %s (%s %s)\n", dir, cfg.Month, cfg.Year)
	return nil
}
