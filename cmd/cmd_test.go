package cmd

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope"
)

// useTempData points the global data directory at a fresh temp dir.
func useTempData(t *testing.T) {
	t.Helper()
	old := *dataDir
	*dataDir = t.TempDir()
	t.Cleanup(func() { *dataDir = old })
}

func runCmd(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing flags for %s: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddThenDelete(t *testing.T) {
	useTempData(t)

	status := runCmd(t, &addCmd{},
		"-date", "2025-01-15", "-scope", "2", "-category", "Electricity",
		"-activity", "Office Electricity", "-quantity", "1000", "-unit", "kWh", "-factor", "0.82")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add returned %v", status)
	}

	ledger, err := LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("ledger has %d entries, want 1", ledger.Len())
	}
	entry, _ := ledger.Entry(0)
	if entry.Scope != carbonscope.Scope2 {
		t.Errorf("scope = %q, want normalized %q", entry.Scope, carbonscope.Scope2)
	}
	if float64(entry.Emissions) != 820 {
		t.Errorf("emissions = %v, want derived 820", entry.Emissions)
	}

	if status := runCmd(t, &deleteCmd{}, "-pos", "0"); status != subcommands.ExitSuccess {
		t.Fatalf("delete returned %v", status)
	}
	ledger, _ = LoadLedger()
	if ledger.Len() != 0 {
		t.Errorf("ledger has %d entries after delete, want 0", ledger.Len())
	}
}

func TestAddRejectsCategoryOutsideScope(t *testing.T) {
	useTempData(t)

	status := runCmd(t, &addCmd{},
		"-scope", "1", "-category", "Electricity",
		"-activity", "Office Electricity", "-quantity", "10", "-unit", "kWh", "-factor", "0.5")
	if status != subcommands.ExitUsageError {
		t.Fatalf("add with Scope 1/Electricity returned %v, want usage error", status)
	}
	ledger, _ := LoadLedger()
	if ledger.Len() != 0 {
		t.Errorf("rejected add must not touch the ledger")
	}
}

func TestAddSuggestsFactor(t *testing.T) {
	useTempData(t)

	// India/Electricity carries a built-in suggestion, no -factor needed.
	status := runCmd(t, &addCmd{},
		"-scope", "2", "-category", "Electricity",
		"-activity", "Office Electricity", "-quantity", "100", "-unit", "kWh")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add without -factor returned %v", status)
	}
	ledger, _ := LoadLedger()
	entry, _ := ledger.Entry(0)
	if entry.EmissionFactor != 0.82 {
		t.Errorf("factor = %v, want suggested 0.82", entry.EmissionFactor)
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	useTempData(t)

	if status := runCmd(t, &deleteCmd{}, "-pos", "7"); status != subcommands.ExitUsageError {
		t.Errorf("delete of position 7 in an empty ledger returned %v, want usage error", status)
	}
}

func TestCompanyMarkdown(t *testing.T) {
	md := companyMarkdown(carbonscope.CompanyInfo{
		Name:          "Acme Textiles",
		Industry:      "Textiles",
		Location:      "India",
		ExportMarkets: []string{"European Union", "United States"},
	})
	for _, want := range []string{
		"# Company Profile",
		"- Name: Acme Textiles",
		"- Export markets: European Union, United States",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("companyMarkdown missing %q in:\n%s", want, md)
		}
	}

	empty := companyMarkdown(carbonscope.CompanyInfo{})
	if !strings.Contains(empty, "No profile stored yet") {
		t.Errorf("empty profile should say so, got:\n%s", empty)
	}
}

func TestReadLedgerTable(t *testing.T) {
	useTempData(t)

	runCmd(t, &addCmd{},
		"-date", "2025-01-15", "-scope", "2", "-category", "Electricity",
		"-activity", "Office Electricity", "-quantity", "1000", "-unit", "kWh", "-factor", "0.82")

	table, err := readLedgerTable()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(table, "Office Electricity") || !strings.Contains(table, "820.00") {
		t.Errorf("ledger table should carry the entry and its emissions:\n%s", table)
	}
}
