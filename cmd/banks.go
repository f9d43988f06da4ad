package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/jvogel/banklet/bank"
)

type banksCmd struct{}

func (*banksCmd) Name() string           { return "banks" }
func (*banksCmd) Synopsis() string       { return "list supported bank export formats" }
func (*banksCmd) Usage() string          { return "banklet banks\n" }
func (*banksCmd) SetFlags(*flag.FlagSet) {}

func (c *banksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, format := range bank.Formats() {
		fmt.Println(format)
	}
	return subcommands.ExitSuccess
}
