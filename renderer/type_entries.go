package renderer

import (
	"github.com/greenledger/carbonscope"
)

// EntryRow is a single ledger entry prepared for rendering.
type EntryRow struct {
	Pos          int
	Date         string
	Scope        string
	Category     string
	Activity     string
	BusinessUnit string
	Facility     string
	Quantity     float64
	Unit         string
	Factor       float64
	Emissions    float64
	Notes        string
}

// EntryList is the data for an entry listing report.
type EntryList struct {
	Title string
	Rows  []EntryRow
	Total float64
}

// NewEntryList builds an EntryList from a slice of positioned entries.
// Positions must be the entry's position in the ledger, not its index in the slice,
// so that partial listings (head, tail) keep addresses a delete command can use.
func NewEntryList(title string, entries []carbonscope.PositionedEntry) *EntryList {
	list := &EntryList{Title: title}
	for _, pe := range entries {
		e := pe.Entry
		list.Rows = append(list.Rows, EntryRow{
			Pos:          pe.Pos,
			Date:         e.Date.String(),
			Scope:        string(e.Scope),
			Category:     e.Category,
			Activity:     e.Activity,
			BusinessUnit: e.BusinessUnit,
			Facility:     e.Facility,
			Quantity:     e.Quantity,
			Unit:         e.Unit,
			Factor:       e.EmissionFactor,
			Emissions:    float64(e.Emissions),
			Notes:        e.Notes,
		})
		list.Total += float64(e.Emissions)
	}
	return list
}
