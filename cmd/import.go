package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct {
	ledgerFlags
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a bank export and rewrite all derived tables" }
func (*importCmd) Usage() string {
	return `banklet import [-o <dir>] [-b <format>] <export-file>

  Parses a bank export, appends its transactions to the ledger, creates
  mapping rows for recipients never seen before, and rewrites all derived
  tables. On the very first import the account metadata (starting balance,
  bank) is derived from the export.

  Export rows are appended verbatim: importing the same file twice
  duplicates its transactions.

Usage Example:
$ banklet import -o ~/ledger -b dkb export.csv

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one export file")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading export: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := ledger.Import(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing export: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Update()

	if err := ledger.Write(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %s into %s\n", f.Arg(0), ledger.Dir())
	return subcommands.ExitSuccess
}
