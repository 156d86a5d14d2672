package carbonscope

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange reports a position outside the ledger bounds.
var ErrOutOfRange = errors.New("position out of range")

var errNegative = errors.New("must not be negative")

// SchemaError reports required columns or fields missing from a record or a
// batch. A batch with a schema error is rejected wholesale.
type SchemaError struct {
	Missing []string
}

func (e SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ValueError reports a value that fails to parse as its declared type
// (number or date). Row is the 1-based data row for CSV imports, and zero
// for manual entries.
type ValueError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e ValueError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: invalid %s %q: %v", e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e ValueError) Unwrap() error { return e.Err }
