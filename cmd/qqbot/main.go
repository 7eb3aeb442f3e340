// Package main is the entry point for the qqbot CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/leetao/qqbot/cmd/qqbot/commands"
	"github.com/leetao/qqbot/internal/logging"
)

func main() {
	// Covers anything logged before flags are parsed.
	slog.SetDefault(logging.Default())

	os.Exit(commands.Main(os.Stderr))
}
