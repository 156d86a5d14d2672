// Package cmd implements the CLI application to manage a company's
// emission ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope"
	"github.com/greenledger/carbonscope/renderer"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")
	c.Register(&exportCmd{}, "ledger")
	c.Register(&companyCmd{}, "ledger")

	c.Register(&listCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&factorCmd{}, "reports")

	c.Register(&classifyCmd{}, "advisory")
	c.Register(&summarizeCmd{}, "advisory")
	c.Register(&offsetCmd{}, "advisory")
	c.Register(&regulationsCmd{}, "advisory")
	c.Register(&optimizeCmd{}, "advisory")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "data", "Path to the data directory holding the emission ledger")

// openStore opens the application store on the configured data directory.
func openStore() *carbonscope.Store {
	return carbonscope.NewStore(*dataDir)
}

// LoadLedger reads the emission ledger from the app data directory. An
// absent file is an empty ledger; a corrupt file has already been
// quarantined with a warning by the time this returns.
func LoadLedger() (*carbonscope.Ledger, error) {
	return openStore().Load()
}

// SaveLedger writes the ledger back, keeping a rolling backup of the
// previous state.
func SaveLedger(l *carbonscope.Ledger) error {
	return openStore().Save(l)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// readLedgerTable renders the whole ledger as a markdown table for the
// advisory experts.
func readLedgerTable() (string, error) {
	ledger, err := LoadLedger()
	if err != nil {
		return "", err
	}
	return renderer.RenderEntries(renderer.NewEntryList("Emission Entries", ledger.Positioned(0, ledger.Len()))), nil
}

// fail prints an error on stderr and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
