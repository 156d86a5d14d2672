package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope/agent"
)

type regulationsCmd struct{}

func (*regulationsCmd) Name() string { return "regulations" }
func (*regulationsCmd) Synopsis() string {
	return "survey the carbon reporting rules relevant to the company"
}
func (*regulationsCmd) Usage() string {
	return `cscope regulations

  Asks the regulation radar which disclosure schemes and border mechanisms
  apply to the stored company profile. Set the profile with 'cscope company'.
`
}

func (*regulationsCmd) SetFlags(f *flag.FlagSet) {}

func (c *regulationsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prompt := companyContext() + "\nWhich carbon reporting regulations and border mechanisms should we prepare for?"
	return advise(ctx, agent.NewRegulationRadar(), prompt)
}
