package carbonscope

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	ledgerFilename  = "emissions.json"
	backupFilename  = "emissions_backup.json"
	companyFilename = "company_info.json"
)

// Store owns the on-disk mirror of the ledger: a single JSON file with a
// rolling pre-save backup. It is a single-writer, last-write-wins store; no
// locking is attempted against concurrent external writers.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir (usually "data"). The directory is
// created lazily on the first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LedgerPath returns the path of the backing file.
func (s *Store) LedgerPath() string { return filepath.Join(s.dir, ledgerFilename) }

// BackupPath returns the path of the rolling pre-save backup.
func (s *Store) BackupPath() string { return filepath.Join(s.dir, backupFilename) }

// quarantinePath returns a timestamped path for preserving corrupt content.
func (s *Store) quarantinePath() string {
	return filepath.Join(s.dir, fmt.Sprintf("emissions_backup_%d.json", time.Now().Unix()))
}

// Load reads the backing file into a new ledger.
//
// An absent or empty file yields an empty ledger. Malformed content is
// quarantined: the corrupt bytes are copied to a timestamped backup, the
// original file is left untouched, and an empty ledger is returned so the
// process always starts in a valid state. Only plain I/O failures are
// returned as errors, and even then an empty usable ledger accompanies them.
func (s *Store) Load() (*Ledger, error) {
	data, err := os.ReadFile(s.LedgerPath())
	if os.IsNotExist(err) {
		return NewLedger(), nil
	}
	if err != nil {
		return NewLedger(), fmt.Errorf("cannot read ledger file %q: %w", s.LedgerPath(), err)
	}

	ledger, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		quarantine := s.quarantinePath()
		if werr := os.WriteFile(quarantine, data, 0644); werr != nil {
			log.Printf("warning: corrupted ledger file %q could not be quarantined: %v", s.LedgerPath(), werr)
		} else {
			log.Printf("warning: corrupted ledger file found, a backup has been created at %q: %v", quarantine, err)
		}
		return NewLedger(), nil
	}
	return ledger, nil
}

// Save mirrors the full in-memory ledger to the backing file, replacing any
// prior content in one operation.
//
// Before overwriting, the current on-disk file is copied to the rolling
// backup path; a backup failure is logged but never aborts the save. On a
// save failure the caller keeps its in-memory mutation and may retry.
func (s *Store) Save(l *Ledger) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create data directory %q: %w", s.dir, err)
	}

	// Best-effort backup of the prior complete content.
	if prior, err := os.ReadFile(s.LedgerPath()); err == nil {
		if err := os.WriteFile(s.BackupPath(), prior, 0644); err != nil {
			log.Printf("warning: could not write backup %q: %v", s.BackupPath(), err)
		}
	}

	f, err := os.Create(s.LedgerPath())
	if err != nil {
		return fmt.Errorf("cannot open ledger file %q for writing: %w", s.LedgerPath(), err)
	}
	defer f.Close()

	if err := EncodeLedger(f, l); err != nil {
		return fmt.Errorf("cannot save ledger to %q: %w", s.LedgerPath(), err)
	}
	return nil
}
