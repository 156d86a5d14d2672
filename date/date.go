// Package date provides a calendar date with day granularity.
//
// Dates are parsed leniently (several common spreadsheet formats are
// accepted) and always rendered in ISO-8601 form.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical string representation of a date, ISO-8601.
const Format = "2006-01-02"

// MonthFormat is the representation of a calendar month, used as a grouping
// key in time aggregations.
const MonthFormat = "2006-01"

// readFormats are the accepted input formats, tried in order. The first one
// is permissive about single-digit month and day (2025-7-1).
var readFormats = []string{
	"2006-1-2",
	"2006/1/2",
	"2-Jan-2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// Date represents a calendar date with no time component.
//
// The zero Date is not a valid date and reports IsZero.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns the canonical time.Time for the day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String formats the date in its canonical ISO-8601 form. The zero date
// formats as the empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(Format)
}

// YearMonth returns the calendar month of the date as "YYYY-MM", or the
// empty string for the zero date.
func (d Date) YearMonth() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(MonthFormat)
}

// Parse parses a Date from a string. It tries all supported input formats
// and returns an error if none match.
func Parse(str string) (Date, error) {
	for _, format := range readFormats {
		if on, err := time.Parse(format, str); err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: want format %q", str, Format)
}

// MustParse is like Parse but panics on error. Intended for tests and
// literals.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON parses a date from a JSON string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// MarshalJSON renders the date as a JSON string in canonical form.
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
