package carbonscope

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	l := NewLedger()
	first := validEntry().Derive()
	first.BusinessUnit = "Logistics"
	first.Notes = "monthly bill"
	l.Append(first)
	second := validEntry()
	second.Scope = Scope3
	second.Category = "Business Travel"
	second.Activity = "Air Travel"
	l.Append(second.Derive())

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}

	back, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if !reflect.DeepEqual(l.entries, back.entries) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back.entries, l.entries)
	}
}

func TestEncode_EmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, NewLedger()); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}
	if buf.String() != "[]" {
		t.Errorf("empty ledger encodes as %q, want %q", buf.String(), "[]")
	}
}

func TestDecode_BlankStream(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader("  \n"))
	if err != nil {
		t.Fatalf("DecodeLedger on blank stream: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("blank stream should decode to an empty ledger, got %d entries", l.Len())
	}
}

func TestDecode_CoercesEmissions(t *testing.T) {
	doc := `[
	  {"date":"2025-01-15","scope":"Scope 2","category":"Electricity","activity":"Office Electricity",
	   "quantity":10,"unit":"kWh","emission_factor":0.5,"emissions_kgCO2e":"not a number"},
	  {"date":"2025-01-16","scope":"Scope 2","category":"Electricity","activity":"Office Electricity",
	   "quantity":10,"unit":"kWh","emission_factor":0.5,"emissions_kgCO2e":"42.5"}
	]`
	l, err := DecodeLedger(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (entries are never silently dropped)", l.Len())
	}
	e0, _ := l.Entry(0)
	if e0.Emissions != 0 {
		t.Errorf("non-numeric emissions coerce to 0, got %v", e0.Emissions)
	}
	e1, _ := l.Entry(1)
	if e1.Emissions != 42.5 {
		t.Errorf("numeric string emissions = %v, want 42.5", e1.Emissions)
	}
}

func TestDecode_KeepsUndatedEntries(t *testing.T) {
	doc := `[{"date":"sometime last year","scope":"Scope 1","category":"Mobile Combustion",
	  "activity":"Company Vehicle","quantity":5,"unit":"liter","emission_factor":2.0,
	  "emissions_kgCO2e":10}]`
	l, err := DecodeLedger(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	e, _ := l.Entry(0)
	if !e.Date.IsZero() {
		t.Errorf("unparseable date should decode to the zero date, got %v", e.Date)
	}
	if e.Emissions != 10 {
		t.Errorf("emissions = %v, want 10", e.Emissions)
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("{not json")); err == nil {
		t.Error("DecodeLedger on malformed content expected an error")
	}
}
