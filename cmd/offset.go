package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope"
	"github.com/greenledger/carbonscope/agent"
)

type offsetCmd struct{}

func (*offsetCmd) Name() string     { return "offset" }
func (*offsetCmd) Synopsis() string { return "recommend carbon offset options for the current footprint" }
func (*offsetCmd) Usage() string {
	return `cscope offset

  Asks the offset advisor for credible offset options sized to the total
  recorded footprint.
`
}

func (*offsetCmd) SetFlags(f *flag.FlagSet) {}

func (c *offsetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		return fail(err)
	}
	prompt := fmt.Sprintf("%s\nOur measured footprint is %.2f kgCO2e over %d entries. What offset options should we consider?",
		companyContext(), float64(carbonscope.Total(ledger)), ledger.Len())
	return advise(ctx, agent.NewOffsetAdvisor(), prompt)
}
