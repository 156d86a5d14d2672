package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope/agent"
)

type summarizeCmd struct{}

func (*summarizeCmd) Name() string     { return "summarize" }
func (*summarizeCmd) Synopsis() string { return "write an executive summary of the emissions report" }
func (*summarizeCmd) Usage() string {
	return `cscope summarize

  Asks the summarizer for an executive summary of the recorded emissions.
`
}

func (*summarizeCmd) SetFlags(f *flag.FlagSet) {}

func (c *summarizeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prompt := companyContext() + "\nWrite the executive summary of our current emission ledger."
	return advise(ctx, agent.NewSummarizer(readLedgerTable), prompt)
}
