package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope"
)

type companyCmd struct {
	name     string
	industry string
	location string
	contact  string
	email    string
	phone    string
	markets  string
}

func (*companyCmd) Name() string     { return "company" }
func (*companyCmd) Synopsis() string { return "show or update the company profile" }
func (*companyCmd) Usage() string {
	return `cscope company [-name <name>] [-industry <industry>] [-location <location>] [options]

  Without flags, shows the stored company profile. With flags, updates the
  given fields and keeps the rest. The profile feeds the advisory commands.
`
}

func (c *companyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Company name.")
	f.StringVar(&c.industry, "industry", "", "Industry sector, e.g. Textiles.")
	f.StringVar(&c.location, "location", "", "Home country or city.")
	f.StringVar(&c.contact, "contact", "", "Contact person.")
	f.StringVar(&c.email, "email", "", "Contact email.")
	f.StringVar(&c.phone, "phone", "", "Contact phone.")
	f.StringVar(&c.markets, "markets", "", "Comma-separated export markets, e.g. 'European Union,United States'.")
}

func (c *companyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	info, err := store.LoadCompany()
	if err != nil {
		return fail(err)
	}

	changed := false
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
			changed = true
		}
	}
	set(&info.Name, c.name)
	set(&info.Industry, c.industry)
	set(&info.Location, c.location)
	set(&info.ContactPerson, c.contact)
	set(&info.Email, c.email)
	set(&info.Phone, c.phone)
	if c.markets != "" {
		info.ExportMarkets = nil
		for _, m := range strings.Split(c.markets, ",") {
			if m = strings.TrimSpace(m); m != "" {
				info.ExportMarkets = append(info.ExportMarkets, m)
			}
		}
		changed = true
	}

	if changed {
		if err := store.SaveCompany(info); err != nil {
			return fail(err)
		}
		fmt.Println("Company profile updated.")
	}

	printMarkdown(companyMarkdown(info))
	return subcommands.ExitSuccess
}

func companyMarkdown(info carbonscope.CompanyInfo) string {
	var b strings.Builder
	b.WriteString("# Company Profile\n\n")
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "- %s: %s\n", label, value)
		}
	}
	row("Name", info.Name)
	row("Industry", info.Industry)
	row("Location", info.Location)
	row("Contact", info.ContactPerson)
	row("Email", info.Email)
	row("Phone", info.Phone)
	row("Export markets", strings.Join(info.ExportMarkets, ", "))
	if b.Len() == len("# Company Profile\n\n") {
		b.WriteString("No profile stored yet. Set one with the flags, see 'cscope help company'.\n")
	}
	return b.String()
}
