package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope/agent"
)

type optimizeCmd struct{}

func (*optimizeCmd) Name() string     { return "optimize" }
func (*optimizeCmd) Synopsis() string { return "propose emission reduction measures" }
func (*optimizeCmd) Usage() string {
	return `cscope optimize

  Asks the optimizer for prioritized reduction measures based on the
  recorded entries.
`
}

func (*optimizeCmd) SetFlags(f *flag.FlagSet) {}

func (c *optimizeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prompt := companyContext() + "\nWhere should we focus to reduce our recorded emissions?"
	return advise(ctx, agent.NewOptimizer(readLedgerTable), prompt)
}
