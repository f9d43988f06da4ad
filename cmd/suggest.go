package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jvogel/banklet/classify"
	"google.golang.org/genai"
)

type suggestCmd struct {
	ledgerFlags
	model string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest labels for unclassified recipients" }
func (*suggestCmd) Usage() string {
	return `banklet suggest [-o <dir>] [-m <model>]

  Asks a Gemini model for label suggestions for every mapping row whose
  classification is still blank. Suggestions are printed, never written:
  mapping.csv stays under your control. Requires GEMINI_API_KEY.

`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.model, "m", classify.DefaultModel, "model to ask for suggestions")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Update()

	var unmapped []string
	for _, m := range ledger.Mappings {
		if !m.Classified() {
			unmapped = append(unmapped, m.Recipient)
		}
	}
	if len(unmapped) == 0 {
		fmt.Println("All recipients are classified.")
		return subcommands.ExitSuccess
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	suggestions, err := classify.Suggest(ctx, client, c.model, unmapped)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking for suggestions:", err)
		return subcommands.ExitFailure
	}

	for _, s := range suggestions {
		fmt.Printf("%s: %s\n", s.Recipient, s.Label)
	}
	return subcommands.ExitSuccess
}
