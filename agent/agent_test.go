package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestTaxonomyTextCoversAllScopes(t *testing.T) {
	got := taxonomyText()
	for _, want := range []string{
		"Scope 1 (Direct emissions",
		"Scope 2 (Indirect emissions",
		"Scope 3 (All other indirect",
		"  - Electricity: Office Electricity, Manufacturing Electricity",
		"  - Business Travel: Air Travel, Ground Travel, Hotel Stays",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("taxonomyText() missing %q", want)
		}
	}
}

func TestLibraryDispatch(t *testing.T) {
	lib := NewLibrary([]Function{NewEntriesFunc(func() (string, error) {
		return "| table |", nil
	})})

	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "EmissionEntries"})
	if got := resp.Response["output"]; got != "| table |" {
		t.Errorf("EmissionEntries output = %v, want the rendered table", got)
	}

	resp = lib(context.Background(), &genai.FunctionCall{ID: "2", Name: "Nope"})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("unknown function should answer with an error, got %v", resp.Response)
	}
}

func TestEntriesFuncReportsReadError(t *testing.T) {
	f := NewEntriesFunc(func() (string, error) {
		return "", errors.New("ledger unavailable")
	})
	resp := f.Call(context.Background(), "1", nil)
	if got, ok := resp.Response["error"]; !ok || got != "ledger unavailable" {
		t.Errorf("read error should surface in the response, got %v", resp.Response)
	}
}

func TestExpertsDeclareTheirTools(t *testing.T) {
	classifier := NewClassifier()
	decls := classifier.Config.Tools[0].FunctionDeclarations
	if len(decls) != 1 || decls[0].Name != "ReportingTaxonomy" {
		t.Errorf("Classifier tools = %v, want ReportingTaxonomy", decls)
	}

	for _, e := range []*Expert{NewOffsetAdvisor(), NewRegulationRadar()} {
		if e.Config.Tools[0].GoogleSearch == nil {
			t.Errorf("expert %s should carry Google Search grounding", e.Name)
		}
	}
}
