package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the emissions summary report" }
func (*summaryCmd) Usage() string {
	return `cscope summary

  Shows total emissions, the breakdown by scope and by category, and the
  month by month evolution.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	ledger, err := store.Load()
	if err != nil {
		return fail(err)
	}
	company, err := store.LoadCompany()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RenderSummary(renderer.NewSummary(company.Name, ledger)))
	return subcommands.ExitSuccess
}
