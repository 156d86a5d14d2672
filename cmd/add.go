package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope"
	"github.com/greenledger/carbonscope/date"
)

type addCmd struct {
	date         string
	scope        string
	category     string
	activity     string
	businessUnit string
	project      string
	country      string
	facility     string
	person       string
	quantity     float64
	unit         string
	factor       float64
	quality      string
	verification string
	notes        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new emission entry" }
func (*addCmd) Usage() string {
	return `cscope add -scope <scope> -category <category> -activity <activity> -quantity <n> -unit <unit> [-factor <f>] [options]

  Records one emission entry at the end of the ledger. When -factor is
  omitted, a suggestion is looked up for the entry's country and category.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Entry date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.scope, "scope", "", "GHG scope: 'Scope 1', 'Scope 2' or 'Scope 3' (short forms '1', '2', '3' work too).")
	f.StringVar(&c.category, "category", "", "Emission category within the scope.")
	f.StringVar(&c.activity, "activity", "", "Activity within the category.")
	f.StringVar(&c.businessUnit, "business-unit", "Corporate", "Business unit the entry belongs to.")
	f.StringVar(&c.project, "project", "Not Applicable", "Project the entry belongs to.")
	f.StringVar(&c.country, "country", "India", "Country where the activity took place.")
	f.StringVar(&c.facility, "facility", "", "Facility where the activity took place.")
	f.StringVar(&c.person, "person", "", "Person responsible for the entry.")
	f.Float64Var(&c.quantity, "quantity", 0, "Activity quantity in the given unit.")
	f.StringVar(&c.unit, "unit", "", "Measurement unit of the quantity, e.g. kWh or liter.")
	f.Float64Var(&c.factor, "factor", -1, "Emission factor in kgCO2e per unit. Omit to use the built-in suggestion.")
	f.StringVar(&c.quality, "quality", string(carbonscope.QualityMedium), "Data quality: Low, Medium or High.")
	f.StringVar(&c.verification, "verification", string(carbonscope.Unverified), "Verification status of the figures.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := date.Today()
	if c.date != "" {
		var err error
		on, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	scope, err := carbonscope.ParseScope(c.scope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !carbonscope.InScope(scope, c.category) {
		fmt.Fprintf(os.Stderr, "Error: category %q does not belong to %s. Legal categories: %s\n",
			c.category, scope, strings.Join(carbonscope.Categories(scope), ", "))
		return subcommands.ExitUsageError
	}

	factor := c.factor
	if factor < 0 {
		suggested, ok := carbonscope.SuggestFactor(c.country, c.category)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no built-in emission factor for %s/%s, pass one with -factor\n", c.country, c.category)
			return subcommands.ExitUsageError
		}
		factor = suggested
		fmt.Printf("Using suggested factor %g kgCO2e per unit for %s/%s\n", factor, c.country, c.category)
	}

	entry := carbonscope.Entry{
		Date:               on,
		BusinessUnit:       c.businessUnit,
		Project:            c.project,
		Scope:              scope,
		Category:           c.category,
		Activity:           c.activity,
		Country:            c.country,
		Facility:           c.facility,
		ResponsiblePerson:  c.person,
		Quantity:           c.quantity,
		Unit:               c.unit,
		EmissionFactor:     factor,
		DataQuality:        carbonscope.DataQuality(c.quality),
		VerificationStatus: carbonscope.VerificationStatus(c.verification),
		Notes:              c.notes,
	}
	if err := entry.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	entry = entry.Derive()

	ledger, err := LoadLedger()
	if err != nil {
		return fail(err)
	}
	ledger.Append(entry)
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded entry %d: %s %s, %.2f kgCO2e\n", ledger.Len()-1, entry.Date, entry.Activity, float64(entry.Emissions))
	return subcommands.ExitSuccess
}
