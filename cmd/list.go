package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope/renderer"
)

type listCmd struct {
	head int
	tail int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the emission entries in the ledger" }
func (*listCmd) Usage() string {
	return `cscope list [-head <n> | -tail <n>]

  Lists emission entries with their positions, in ledger order.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N entries.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N entries.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		return fail(err)
	}

	from, to := 0, ledger.Len()
	title := "Emission Entries"
	if c.head > 0 && c.head < to {
		to = c.head
		title = fmt.Sprintf("First %d Emission Entries", c.head)
	}
	if c.tail > 0 && ledger.Len()-c.tail > 0 {
		from = ledger.Len() - c.tail
		title = fmt.Sprintf("Last %d Emission Entries", c.tail)
	}

	printMarkdown(renderer.RenderEntries(renderer.NewEntryList(title, ledger.Positioned(from, to))))
	return subcommands.ExitSuccess
}
