package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope"
)

type deleteCmd struct {
	pos int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete the entry at a given position" }
func (*deleteCmd) Usage() string {
	return `cscope delete -pos <n>

  Deletes the entry at 0-based position n, as shown by 'cscope list'.
  Entries after it are renumbered.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.pos, "pos", -1, "0-based position of the entry to delete.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.pos < 0 {
		fmt.Fprintln(os.Stderr, "Error: -pos is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		return fail(err)
	}
	entry, err := ledger.Entry(c.pos)
	if err == nil {
		err = ledger.Delete(c.pos)
	}
	if err != nil {
		if errors.Is(err, carbonscope.ErrOutOfRange) {
			fmt.Fprintf(os.Stderr, "Error: no entry at position %d, the ledger has %d entries.\n", c.pos, ledger.Len())
			return subcommands.ExitUsageError
		}
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted entry %d (%s %s). %d entries remain.\n", c.pos, entry.Date, entry.Activity, ledger.Len())
	return subcommands.ExitSuccess
}
