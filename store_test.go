package carbonscope

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStore_LoadAbsentFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "data"))
	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on absent file: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("absent file should yield an empty ledger, got %d entries", l.Len())
	}
}

func TestStore_LoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if err := os.WriteFile(s.LedgerPath(), nil, 0644); err != nil {
		t.Fatal(err)
	}
	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on empty file: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("empty file should yield an empty ledger, got %d entries", l.Len())
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "data"))
	l := NewLedger()
	l.Append(validEntry().Derive())
	l.Append(validEntry().Derive())

	if err := s.Save(l); err != nil {
		t.Fatalf("Save(): %v", err)
	}
	back, err := s.Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if !reflect.DeepEqual(l.entries, back.entries) {
		t.Errorf("save/load mismatch:\n got %+v\nwant %+v", back.entries, l.entries)
	}
}

func TestStore_SaveBacksUpPriorContent(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "data"))

	l := NewLedger()
	l.Append(validEntry().Derive())
	if err := s.Save(l); err != nil {
		t.Fatalf("first Save(): %v", err)
	}
	first, err := os.ReadFile(s.LedgerPath())
	if err != nil {
		t.Fatal(err)
	}

	l.Append(validEntry().Derive())
	if err := s.Save(l); err != nil {
		t.Fatalf("second Save(): %v", err)
	}

	backup, err := os.ReadFile(s.BackupPath())
	if err != nil {
		t.Fatalf("rolling backup was not written: %v", err)
	}
	if string(backup) != string(first) {
		t.Error("backup must hold the prior complete content")
	}
}

func TestStore_QuarantinesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	corrupt := []byte(`[{"date": "2025-`) // truncated write
	if err := os.WriteFile(s.LedgerPath(), corrupt, 0644); err != nil {
		t.Fatal(err)
	}

	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on corrupt file: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("corrupt file should yield an empty ledger, got %d entries", l.Len())
	}

	// The original file is untouched.
	original, err := os.ReadFile(s.LedgerPath())
	if err != nil || string(original) != string(corrupt) {
		t.Errorf("original file was modified: %q, %v", original, err)
	}

	// Exactly one quarantine backup exists and holds the corrupt bytes.
	matches, err := filepath.Glob(filepath.Join(dir, "emissions_backup_*.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("quarantine backups = %d, want exactly 1 (%v)", len(matches), matches)
	}
	quarantined, err := os.ReadFile(matches[0])
	if err != nil || string(quarantined) != string(corrupt) {
		t.Errorf("quarantine content = %q, want the original corrupt bytes", quarantined)
	}
}

func TestStore_CompanyRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "data"))

	// Absent profile is a zero value, not an error.
	info, err := s.LoadCompany()
	if err != nil {
		t.Fatalf("LoadCompany() on absent file: %v", err)
	}
	if !reflect.DeepEqual(info, CompanyInfo{}) {
		t.Errorf("absent profile = %+v, want zero value", info)
	}

	want := CompanyInfo{
		Name:          "Acme Textiles",
		Industry:      "Manufacturing",
		Location:      "Mumbai, India",
		ExportMarkets: []string{"France", "European Union"},
	}
	if err := s.SaveCompany(want); err != nil {
		t.Fatalf("SaveCompany(): %v", err)
	}
	got, err := s.LoadCompany()
	if err != nil {
		t.Fatalf("LoadCompany(): %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("company round trip = %+v, want %+v", got, want)
	}
}
