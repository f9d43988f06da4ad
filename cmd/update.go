package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateCmd struct {
	ledgerFlags
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "re-derive all tables from the persisted ledger" }
func (*updateCmd) Usage() string {
	return `banklet update [-o <dir>]

  Re-runs the derivation pipeline on the persisted ledger with no new
  data: mapping growth, the mapping join, the coalesced and distributed
  views and the balance history. Run it after editing mapping.csv or the
  custom columns of transactions.csv.

`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	ledger, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger.Update()

	if err := ledger.Write(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
