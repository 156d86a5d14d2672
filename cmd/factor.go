package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope"
)

type factorCmd struct {
	country  string
	category string
}

func (*factorCmd) Name() string     { return "factor" }
func (*factorCmd) Synopsis() string { return "look up a built-in emission factor" }
func (*factorCmd) Usage() string {
	return `cscope factor -country <country> -category <category>

  Prints the built-in emission factor suggestion for a country and category.
  Without flags, lists the covered countries.
`
}

func (c *factorCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "Country to look up.")
	f.StringVar(&c.category, "category", "", "Category to look up.")
}

func (c *factorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.country == "" && c.category == "" {
		fmt.Printf("Countries with built-in factors: %s\n", strings.Join(carbonscope.FactorCountries(), ", "))
		return subcommands.ExitSuccess
	}
	if c.country == "" || c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -country and -category go together.")
		return subcommands.ExitUsageError
	}

	factor, ok := carbonscope.SuggestFactor(c.country, c.category)
	if !ok {
		fmt.Printf("No built-in factor for %s/%s. Use a factor from your supplier or national inventory.\n", c.country, c.category)
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s/%s: %g kgCO2e per unit\n", c.country, c.category, factor)
	return subcommands.ExitSuccess
}
