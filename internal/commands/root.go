package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendnote-dev/spendnote/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "spendnote",
		Short:   "Turn hand-typed daily expense notes into a categorized CSV",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newParseCommand())

	return rootCmd
}
