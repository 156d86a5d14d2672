package carbonscope

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/greenledger/carbonscope/date"
)

// This file handles the tabular import/export format: plain CSV with a
// header row, one entry per data row, in ledger order.

// csvColumns is the full column set in export order, matching the ledger
// field names verbatim.
var csvColumns = []string{
	"date", "business_unit", "project", "scope", "category", "activity",
	"country", "facility", "responsible_person", "quantity", "unit",
	"emission_factor", "emissions_kgCO2e", "data_quality",
	"verification_status", "notes",
}

// enterpriseDefaults are filled in for every metadata column missing from an
// imported file, so imported data is always enterprise-schema-complete even
// from a minimal external file.
var enterpriseDefaults = map[string]string{
	"business_unit":       "Corporate",
	"project":             "Not Applicable",
	"country":             "India",
	"facility":            "",
	"responsible_person":  "",
	"data_quality":        "Medium",
	"verification_status": "Unverified",
	"notes":               "",
}

// ImportCSV parses a CSV stream, validates it, completes it with enterprise
// defaults, and appends the resulting batch to the ledger. It returns the
// number of entries added.
//
// Validation is fail-fast per batch: a structurally missing required column
// rejects the whole file with a SchemaError, and any unparseable number or
// date in any row rejects the whole file with a ValueError. When the file
// carries its own emissions_kgCO2e column those figures are trusted as-is
// (they may be externally audited); emissions are computed from quantity and
// factor only when the column is absent.
func ImportCSV(r io.Reader, l *Ledger) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("cannot parse CSV: %w", err)
	}
	if len(records) == 0 {
		return 0, SchemaError{Missing: RequiredColumns}
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	if err := ValidateHeader(header); err != nil {
		return 0, err
	}
	_, hasEmissions := index["emissions_kgCO2e"]

	// cell returns the trimmed value of a column, or the enterprise
	// default when the column is absent from the file.
	cell := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return enterpriseDefaults[column]
		}
		return strings.TrimSpace(record[i])
	}

	batch := make([]Entry, 0, len(records)-1)
	for row, record := range records[1:] {
		quantity, err := strconv.ParseFloat(cell(record, "quantity"), 64)
		if err != nil {
			return 0, ValueError{Row: row + 1, Field: "quantity", Value: cell(record, "quantity"), Err: err}
		}
		factor, err := strconv.ParseFloat(cell(record, "emission_factor"), 64)
		if err != nil {
			return 0, ValueError{Row: row + 1, Field: "emission_factor", Value: cell(record, "emission_factor"), Err: err}
		}
		on, err := date.Parse(cell(record, "date"))
		if err != nil {
			return 0, ValueError{Row: row + 1, Field: "date", Value: cell(record, "date"), Err: err}
		}

		// Scope values are normalized when recognizable, kept verbatim
		// otherwise: the importer does not re-validate enumerations or
		// the category hierarchy.
		scope := Scope(cell(record, "scope"))
		if parsed, err := ParseScope(string(scope)); err == nil {
			scope = parsed
		}

		var emissions KgCO2e
		if hasEmissions {
			// Trusted as supplied; a non-numeric value coerces to
			// zero rather than rejecting the batch, matching the
			// read-time coercion rule.
			if f, err := strconv.ParseFloat(cell(record, "emissions_kgCO2e"), 64); err == nil {
				emissions = KgCO2e(f)
			}
		} else {
			emissions = ComputeEmissions(quantity, factor)
		}

		batch = append(batch, Entry{
			Date:               on,
			BusinessUnit:       cell(record, "business_unit"),
			Project:            cell(record, "project"),
			Scope:              scope,
			Category:           cell(record, "category"),
			Activity:           cell(record, "activity"),
			Country:            cell(record, "country"),
			Facility:           cell(record, "facility"),
			ResponsiblePerson:  cell(record, "responsible_person"),
			Quantity:           quantity,
			Unit:               cell(record, "unit"),
			EmissionFactor:     factor,
			Emissions:          emissions,
			DataQuality:        DataQuality(cell(record, "data_quality")),
			VerificationStatus: VerificationStatus(cell(record, "verification_status")),
			Notes:              cell(record, "notes"),
		})
	}

	l.AppendBatch(batch)
	return len(batch), nil
}

// ExportCSV writes the full ledger as CSV: ledger field names as header, one
// row per entry, in ledger order.
func ExportCSV(w io.Writer, l *Ledger) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for pos, e := range l.Entries() {
		record := []string{
			e.Date.String(),
			e.BusinessUnit,
			e.Project,
			string(e.Scope),
			e.Category,
			e.Activity,
			e.Country,
			e.Facility,
			e.ResponsiblePerson,
			strconv.FormatFloat(e.Quantity, 'f', -1, 64),
			e.Unit,
			strconv.FormatFloat(e.EmissionFactor, 'f', -1, 64),
			strconv.FormatFloat(float64(e.Emissions), 'f', -1, 64),
			string(e.DataQuality),
			string(e.VerificationStatus),
			e.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV row %d: %w", pos, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("cannot flush CSV: %w", err)
	}
	return nil
}
