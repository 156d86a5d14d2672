package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the full ledger as CSV" }
func (*exportCmd) Usage() string {
	return `cscope export [-o <file.csv>]

  Writes every entry as CSV, in ledger order, to the given file or stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		return fail(err)
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
		w = out
	}

	if err := carbonscope.ExportCSV(w, ledger); err != nil {
		return fail(err)
	}
	if c.output != "" {
		fmt.Printf("Exported %d entries to %s\n", ledger.Len(), c.output)
	}
	return subcommands.ExitSuccess
}
