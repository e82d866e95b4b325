// Package dates parses the day-first timestamps this tool recognizes in CSV
// cells ("DD.MM.YYYY" with an optional ", HH:MM" suffix) and applies
// inclusive from/to range filters over them.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const layoutDate = "02.01.2006"

// Listed most-specific first; the bare date layout would otherwise reject
// values carrying a time suffix.
var layouts = []string{"02.01.2006, 15:04", "02.01.2006,15:04", layoutDate}

var cellRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}(,\s*\d{2}:\d{2})?$`)

// Matches reports whether a raw cell value has the shape of a supported
// timestamp. It is a cheap shape check used for column detection; Parse still
// rejects impossible dates such as 31.02.2024.
func Matches(s string) bool {
	return cellRe.MatchString(strings.TrimSpace(s))
}

// Parse converts a cell value into a time.Time. Values without a time
// component resolve to midnight.
func Parse(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, l := range layouts {
		if t, err := time.Parse(l, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Range is an inclusive time window. A zero bound means that side is open.
type Range struct {
	From time.Time
	To   time.Time
}

// ParseRange builds a Range from raw from/to strings, either of which may be
// empty. A to-bound given without a time component is extended to the end of
// that day so the bound stays inclusive.
func ParseRange(from, to string) (Range, error) {
	var r Range
	if from != "" {
		t, err := Parse(from)
		if err != nil {
			return Range{}, fmt.Errorf("from bound: %w", err)
		}
		r.From = t
	}
	if to != "" {
		t, err := Parse(to)
		if err != nil {
			return Range{}, fmt.Errorf("to bound: %w", err)
		}
		if !strings.Contains(to, ",") {
			t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		}
		r.To = t
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return Range{}, fmt.Errorf("empty range: %s is after %s", from, to)
	}
	return r, nil
}

// IsZero reports whether no bound is set.
func (r Range) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains reports whether t falls inside the range, bounds included.
func (r Range) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}
