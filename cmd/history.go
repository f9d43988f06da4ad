package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jvogel/banklet/renderer"
)

type historyCmd struct {
	ledgerFlags
	currency string
	tail     int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the balance history and totals by label" }
func (*historyCmd) Usage() string {
	return `banklet history [-o <dir>] [-n <count>] [-c <currency>]

  Renders the daily balance history of the ledger and the coalesced
  totals per label as a markdown report.

`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.IntVar(&c.tail, "n", 0, "show only the last n days (0 shows all)")
	f.StringVar(&c.currency, "c", "EUR", "display currency")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	// derive in memory only, nothing is written
	ledger.Update()

	entries := ledger.History
	if c.tail > 0 && len(entries) > c.tail {
		entries = entries[len(entries)-c.tail:]
	}

	printMarkdown(renderer.History(entries, ledger.Coalesced, c.currency))
	return subcommands.ExitSuccess
}
