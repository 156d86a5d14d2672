package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "bulk-load entries from a CSV file" }
func (*importCmd) Usage() string {
	return `cscope import -file <file.csv>

  Appends every row of the file to the ledger. The batch is all-or-nothing:
  one invalid row rejects the whole file. See 'cscope topic csv' for the format.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV file to import.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	ledger, err := LoadLedger()
	if err != nil {
		return fail(err)
	}

	count, err := carbonscope.ImportCSV(in, ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: import of %q rejected: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Imported %d entries from %s. The ledger now has %d entries.\n", count, c.file, ledger.Len())
	return subcommands.ExitSuccess
}
