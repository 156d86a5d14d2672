package carbonscope

import (
	"fmt"
	"iter"
	"slices"

	"github.com/greenledger/carbonscope/date"
)

// Ledger is the ordered collection of all recorded emission entries.
//
// Entries keep their insertion order; the 0-based position is the addressing
// key for deletion, and deleting renumbers all subsequent entries. There are
// no stable entry identifiers.
type Ledger struct {
	entries []Entry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]Entry, 0)}
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// Entry returns the entry at the given position.
func (l *Ledger) Entry(pos int) (Entry, error) {
	if pos < 0 || pos >= len(l.entries) {
		return Entry{}, fmt.Errorf("cannot read entry %d of %d: %w", pos, len(l.entries), ErrOutOfRange)
	}
	return l.entries[pos], nil
}

// Append adds an entry at the end of the ledger.
func (l *Ledger) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// AppendBatch appends an ordered sequence of entries. The in-memory step is
// all-or-nothing: either every entry is appended or none is.
func (l *Ledger) AppendBatch(entries []Entry) {
	l.entries = append(l.entries, entries...)
}

// Delete removes the entry at the given 0-based position and re-indexes the
// remainder contiguously. It fails without mutating the ledger when the
// position is outside [0, Len).
func (l *Ledger) Delete(pos int) error {
	if pos < 0 || pos >= len(l.entries) {
		return fmt.Errorf("cannot delete entry %d of %d: %w", pos, len(l.entries), ErrOutOfRange)
	}
	l.entries = slices.Delete(l.entries, pos, pos+1)
	return nil
}

// Entries returns an iterator over (position, entry) pairs in ledger order.
func (l *Ledger) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// PositionedEntry pairs an entry with its position in the ledger, so that
// partial views keep addresses usable by position-based operations.
type PositionedEntry struct {
	Pos   int
	Entry Entry
}

// Positioned returns the entries between positions from (inclusive) and to
// (exclusive), clamped to the ledger bounds.
func (l *Ledger) Positioned(from, to int) []PositionedEntry {
	from = max(from, 0)
	to = min(to, len(l.entries))
	var out []PositionedEntry
	for i := from; i < to; i++ {
		out = append(out, PositionedEntry{Pos: i, Entry: l.entries[i]})
	}
	return out
}

// LatestDate returns the most recent entry date, or the zero date when the
// ledger is empty or holds no valid dates.
func (l *Ledger) LatestDate() date.Date {
	var latest date.Date
	for _, e := range l.entries {
		if e.Date.After(latest) {
			latest = e.Date
		}
	}
	return latest
}
