// Package cmd implements the CLI application to manage a bank ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/jvogel/banklet"
)

// Register registers all subcommands on the commander.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "ledger")
	c.Register(&updateCmd{}, "ledger")
	c.Register(&banksCmd{}, "ledger")

	c.Register(&historyCmd{}, "reports")
	c.Register(&suggestCmd{}, "reports")
}

// Environment fallbacks for the common flags, loaded from .env by main.
const (
	EnvOutputDir = "BANKLET_OUTPUT_DIR"
	EnvBank      = "BANKLET_BANK"
)

// ledgerFlags are the options shared by every command that opens a ledger.
type ledgerFlags struct {
	outputDir string
	bank      string
}

func (l *ledgerFlags) register(f *flag.FlagSet) {
	f.StringVar(&l.outputDir, "o", envOr(EnvOutputDir, "."),
		"directory holding the ledger files")
	f.StringVar(&l.bank, "b", os.Getenv(EnvBank),
		"bank format of the export; falls back to the bank recorded in metadata.csv")
}

func (l *ledgerFlags) open() (*banklet.Ledger, error) {
	return banklet.Open(l.outputDir, l.bank)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
