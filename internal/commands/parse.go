package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendnote-dev/spendnote/internal/config"
	"github.com/spendnote-dev/spendnote/internal/logging"
	"github.com/spendnote-dev/spendnote/internal/model"
	"github.com/spendnote-dev/spendnote/internal/notes"
	"github.com/spendnote-dev/spendnote/internal/report"
)

type parseOptions struct {
	notesPath  string // "-" reads stdin
	configPath string
	month      string
	year       string
	outDir     string
}

func newParseCommand() *cobra.Command {
	opts := parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [notes-file]",
		Short: "Parse a notes file and write the monthly transactions CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.notesPath = "notes.txt"
			if len(args) > 0 {
				opts.notesPath = args[0]
			}
			return runParse(opts, cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", config.Filename, "config file path")
	cmd.Flags().StringVar(&opts.month, "month", "", "report month label (overrides config)")
	cmd.Flags().StringVar(&opts.year, "year", "", "year for all dates (overrides config)")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "output directory (overrides config)")

	return cmd
}

func runParse(opts parseOptions, stdin io.Reader) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.month != "" {
		cfg.Month = opts.month
	}
	if opts.year != "" {
		cfg.Year = opts.year
	}
	if opts.outDir != "" {
		cfg.OutputDir = opts.outDir
	}

	log := logging.New(logging.ResolveLevel(cfg.LogLevel))

	text, err := readNotes(opts.notesPath, stdin)
	if err != nil {
		return fmt.Errorf("reading notes: %w", err)
	}

	log.Info().Str("notes", opts.notesPath).Str("month", cfg.Month).Str("year", cfg.Year).Msg("started")

	parser := notes.DefaultRegistry(cfg.Year, log).Get("daily")
	res := parser.Parse(text)

	if verrs := model.ValidateRecords(res.Records); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	path, err := report.WriteFile(cfg.OutputDir, cfg.Year, cfg.Month, res.Records)
	if err != nil {
		return err
	}

	log.Info().
		Int("records", len(res.Records)).
		Int("dates_found", res.DatesFound).
		Int("splits", res.SplitsFound).
		Str("output", path).
		Msg("report written")

	fmt.Printf("Wrote %s (%d records, %d dates, %d splits)\n",
		path, len(res.Records), res.DatesFound, res.SplitsFound)
	return nil
}

// loadConfig reads the config file, falling back to defaults for the current
// month when it does not exist. A present-but-broken config is an error.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(time.Now()), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func readNotes(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
