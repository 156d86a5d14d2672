package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/greenledger/carbonscope"
	"google.golang.org/genai"
)

// ReadLedger returns the current emission entries rendered as a markdown
// table. The closure lets experts see fresh data without the agent package
// knowing where the ledger lives.
type ReadLedger func() (string, error)

// NewEntriesFunc exposes the emission ledger to an expert as a callable
// function.
func NewEntriesFunc(read ReadLedger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "EmissionEntries",
			Description: `EmissionEntries lists every recorded emission entry of the company:
			date, scope, category, activity, quantity, unit, emission factor and resulting kgCO2e.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of all emission entries with the grand total.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "EmissionEntries"}
			table, err := read()
			if err != nil {
				fresp.Response = map[string]any{"error": err.Error()}
				return fresp
			}
			fresp.Response = map[string]any{"output": table}
			return fresp
		},
	}
}

// NewTaxonomyFunc exposes the scope/category/activity hierarchy to the
// classifier.
func NewTaxonomyFunc() *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ReportingTaxonomy",
			Description: `ReportingTaxonomy lists the GHG Protocol hierarchy used by this ledger:
			every scope, the categories legal under it, and the activities legal under each category.
			Classifications must use these exact labels.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The scope, category and activity labels, one category per line.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "ReportingTaxonomy",
				Response: map[string]any{"output": taxonomyText()},
			}
		},
	}
}

func taxonomyText() string {
	var b strings.Builder
	for _, scope := range carbonscope.Scopes {
		fmt.Fprintf(&b, "%s (%s)\n", scope, carbonscope.ScopeDescriptions[scope])
		for _, category := range carbonscope.Categories(scope) {
			fmt.Fprintf(&b, "  - %s: %s\n", category, strings.Join(carbonscope.Activities(category), ", "))
		}
	}
	return b.String()
}
