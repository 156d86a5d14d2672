package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope/agent"
)

type classifyCmd struct{}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "classify an activity description into the ledger taxonomy" }
func (*classifyCmd) Usage() string {
	return `cscope classify <description>

  Asks the classifier which scope, category and activity fit a plain-language
  description, e.g. 'diesel for the delivery vans'.
`
}

func (*classifyCmd) SetFlags(f *flag.FlagSet) {}

func (c *classifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a description is required.")
		return subcommands.ExitUsageError
	}
	description := strings.Join(f.Args(), " ")
	return advise(ctx, agent.NewClassifier(), "Classify this business activity: "+description)
}
