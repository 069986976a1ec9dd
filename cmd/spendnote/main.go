package main

import (
	"os"

	"github.com/spendnote-dev/spendnote/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
