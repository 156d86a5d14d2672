// Package renderer turns ledger views into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderEntries renders an entry listing to a markdown string.
func RenderEntries(list *EntryList) string {
	partials := map[string]string{
		"entries_title": "entries_title.md",
		"entries_table": "entries_table.md",
	}
	return renderTemplate("entries", "entries.md", partials, list)
}

// RenderSummary renders the emissions summary report to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_title":      "summary_title.md",
		"summary_scopes":     "summary_scopes.md",
		"summary_categories": "summary_categories.md",
		"summary_monthly":    "summary_monthly.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

var funcs = template.FuncMap{
	// kg formats an emission amount with two decimals.
	"kg": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	// num formats a quantity with the fewest digits that round-trip.
	"num": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	// pct formats a share of the total.
	"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := templates.ReadFile("templates/" + mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = templates.ReadFile("templates/" + file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
