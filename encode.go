package carbonscope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/greenledger/carbonscope/date"
)

// This file contains the persistence format of the ledger: a single JSON
// array of entry objects, indented, human-readable and diff-friendly. An
// empty ledger is the two-byte document `[]`.

// jentry is the on-disk shape of an entry. Reading goes through it so that
// loosely-typed values can be repaired instead of discarded: an unparseable
// date becomes the zero date (excluded from time aggregations) and a
// non-numeric emissions value coerces to zero.
type jentry struct {
	Date               string             `json:"date"`
	BusinessUnit       string             `json:"business_unit"`
	Project            string             `json:"project"`
	Scope              Scope              `json:"scope"`
	Category           string             `json:"category"`
	Activity           string             `json:"activity"`
	Country            string             `json:"country"`
	Facility           string             `json:"facility"`
	ResponsiblePerson  string             `json:"responsible_person"`
	Quantity           float64            `json:"quantity"`
	Unit               string             `json:"unit"`
	EmissionFactor     float64            `json:"emission_factor"`
	Emissions          KgCO2e             `json:"emissions_kgCO2e"`
	DataQuality        DataQuality        `json:"data_quality"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Notes              string             `json:"notes"`
}

// DecodeLedger decodes a ledger from its JSON array representation.
// An empty or blank stream yields an empty ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}

	ledger := NewLedger()
	if len(bytes.TrimSpace(data)) == 0 {
		return ledger, nil
	}

	var jentries []jentry
	if err := json.Unmarshal(data, &jentries); err != nil {
		return nil, fmt.Errorf("cannot parse ledger: %w", err)
	}

	for i, je := range jentries {
		on, err := date.Parse(je.Date)
		if err != nil {
			// Keep the entry; its emissions still count, only the
			// time aggregation skips it.
			log.Printf("entry %d has unparseable date %q, keeping it undated", i, je.Date)
			on = date.Date{}
		}
		ledger.entries = append(ledger.entries, Entry{
			Date:               on,
			BusinessUnit:       je.BusinessUnit,
			Project:            je.Project,
			Scope:              je.Scope,
			Category:           je.Category,
			Activity:           je.Activity,
			Country:            je.Country,
			Facility:           je.Facility,
			ResponsiblePerson:  je.ResponsiblePerson,
			Quantity:           je.Quantity,
			Unit:               je.Unit,
			EmissionFactor:     je.EmissionFactor,
			Emissions:          je.Emissions,
			DataQuality:        je.DataQuality,
			VerificationStatus: je.VerificationStatus,
			Notes:              je.Notes,
		})
	}
	return ledger, nil
}

// EncodeLedger writes the full ledger as an indented JSON array, replacing
// any prior content of w. An empty ledger encodes as `[]`.
func EncodeLedger(w io.Writer, l *Ledger) error {
	if l.Len() == 0 {
		if _, err := w.Write([]byte("[]")); err != nil {
			return fmt.Errorf("cannot write ledger: %w", err)
		}
		return nil
	}

	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal ledger: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write ledger: %w", err)
	}
	return nil
}
