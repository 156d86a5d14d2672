package renderer

import (
	"github.com/greenledger/carbonscope"
)

// ScopeRow is one scope's share of the total for rendering.
type ScopeRow struct {
	Scope     string
	Emissions float64
	Share     float64 // percentage of the grand total
}

// CategoryRow is one category's share of the total for rendering.
type CategoryRow struct {
	Category  string
	Emissions float64
	Share     float64
}

// MonthRow is one (month, scope) cell of the over-time breakdown.
type MonthRow struct {
	Month     string
	Scope     string
	Emissions float64
}

// Summary is the data for the emissions summary report.
type Summary struct {
	Company    string
	Entries    int
	LatestDate string
	Total      float64
	Scopes     []ScopeRow
	Categories []CategoryRow
	Months     []MonthRow
}

// NewSummary builds the summary report data from a ledger snapshot.
// Shares are computed against the grand total; a zero total leaves all
// shares at zero rather than dividing by it.
func NewSummary(company string, l *carbonscope.Ledger) *Summary {
	s := &Summary{
		Company:    company,
		Entries:    l.Len(),
		LatestDate: l.LatestDate().String(),
		Total:      float64(carbonscope.Total(l)),
	}
	for _, st := range carbonscope.ByScope(l) {
		s.Scopes = append(s.Scopes, ScopeRow{
			Scope:     string(st.Scope),
			Emissions: float64(st.Total),
			Share:     share(float64(st.Total), s.Total),
		})
	}
	for _, ct := range carbonscope.ByCategory(l) {
		s.Categories = append(s.Categories, CategoryRow{
			Category:  ct.Category,
			Emissions: float64(ct.Total),
			Share:     share(float64(ct.Total), s.Total),
		})
	}
	for _, mt := range carbonscope.OverTime(l) {
		s.Months = append(s.Months, MonthRow{
			Month:     mt.Month,
			Scope:     string(mt.Scope),
			Emissions: float64(mt.Total),
		})
	}
	return s
}

func share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
