package carbonscope

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Aggregations are pure, read-only functions over a ledger snapshot. They
// run a full in-memory scan; at an SME's transaction volume nothing
// incremental is needed. Sums accumulate with decimal arithmetic so grouped
// totals always reconcile with the grand total.

// ScopeTotal is the summed emissions of one scope.
type ScopeTotal struct {
	Scope Scope
	Total KgCO2e
}

// CategoryTotal is the summed emissions of one category.
type CategoryTotal struct {
	Category string
	Total    KgCO2e
}

// MonthlyTotal is the summed emissions of one (calendar month, scope) pair.
type MonthlyTotal struct {
	Month string // "YYYY-MM"
	Scope Scope
	Total KgCO2e
}

// Total sums emissions across all entries.
func Total(l *Ledger) KgCO2e {
	sum := decimal.Zero
	for _, e := range l.Entries() {
		sum = sum.Add(decimal.NewFromFloat(float64(e.Emissions)))
	}
	return KgCO2e(sum.InexactFloat64())
}

// ByScope sums emissions grouped by scope, sorted by scope label for stable
// output.
func ByScope(l *Ledger) []ScopeTotal {
	groups := make(map[Scope]decimal.Decimal)
	for _, e := range l.Entries() {
		groups[e.Scope] = groups[e.Scope].Add(decimal.NewFromFloat(float64(e.Emissions)))
	}
	totals := make([]ScopeTotal, 0, len(groups))
	for scope, sum := range groups {
		totals = append(totals, ScopeTotal{Scope: scope, Total: KgCO2e(sum.InexactFloat64())})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Scope < totals[j].Scope })
	return totals
}

// ByCategory sums emissions grouped by category, sorted descending by total.
// Categories with equal totals sort alphabetically.
func ByCategory(l *Ledger) []CategoryTotal {
	groups := make(map[string]decimal.Decimal)
	for _, e := range l.Entries() {
		groups[e.Category] = groups[e.Category].Add(decimal.NewFromFloat(float64(e.Emissions)))
	}
	totals := make([]CategoryTotal, 0, len(groups))
	for category, sum := range groups {
		totals = append(totals, CategoryTotal{Category: category, Total: KgCO2e(sum.InexactFloat64())})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// OverTime sums emissions grouped by calendar month and scope, sorted by
// month then scope. Entries without a valid date are excluded; they still
// count in every other aggregation.
func OverTime(l *Ledger) []MonthlyTotal {
	type key struct {
		month string
		scope Scope
	}
	groups := make(map[key]decimal.Decimal)
	for _, e := range l.Entries() {
		if e.Date.IsZero() {
			continue
		}
		k := key{month: e.Date.YearMonth(), scope: e.Scope}
		groups[k] = groups[k].Add(decimal.NewFromFloat(float64(e.Emissions)))
	}
	totals := make([]MonthlyTotal, 0, len(groups))
	for k, sum := range groups {
		totals = append(totals, MonthlyTotal{Month: k.month, Scope: k.scope, Total: KgCO2e(sum.InexactFloat64())})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Month != totals[j].Month {
			return totals[i].Month < totals[j].Month
		}
		return totals[i].Scope < totals[j].Scope
	})
	return totals
}
