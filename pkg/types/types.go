// pkg/types/types.go

// Package types defines the public data model shared by the scraping
// engine, the output writers, and the HTTP API.
package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is one extracted press release. Every extractor emits records
// of exactly this shape; Date is nil when no recognized format matched
// the page's date text.
type Record struct {
	Source string `json:"source"`
	URL    string `json:"url"`
	Title  string `json:"title"`
	Date   *Date  `json:"date"`
	Domain string `json:"domain"`
}

// DateString returns the record's date as YYYY-MM-DD, or the empty
// string when the date is absent.
func (r Record) DateString() string {
	if r.Date == nil {
		return ""
	}
	return r.Date.String()
}

// Date is a calendar date with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = DateOf(t)
	return nil
}
