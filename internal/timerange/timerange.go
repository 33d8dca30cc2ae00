// Package timerange normalizes heterogeneous export-window inputs into a
// canonical pair of epoch seconds.
package timerange

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadFormat is wrapped by parse errors for unrecognized date strings.
var ErrBadFormat = errors.New("unrecognized time format")

// Accepted input layouts, tried in order. Date-only means local midnight.
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const displayLayout = "2006-01-02 15:04:05"

// Range is a normalized export window in epoch seconds, local time.
// A nil *Range means the full history (no filtering).
type Range struct {
	Start int64
	End   int64
}

// New builds a Range from two time values via their epoch representation.
func New(start, end time.Time) *Range {
	return &Range{Start: start.Unix(), End: end.Unix()}
}

// ParseBound parses a single bound string in local time.
func ParseBound(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)", ErrBadFormat, s)
}

// FromStrings normalizes optional start/end strings. Both empty yields a
// nil Range (full-history export). An absent start defaults to the Unix
// epoch, an absent end to now. A start after end is not an error; the
// query it produces simply matches nothing.
func FromStrings(start, end string) (*Range, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	startT := time.Unix(0, 0)
	endT := time.Now()
	var err error
	if start != "" {
		if startT, err = ParseBound(start); err != nil {
			return nil, fmt.Errorf("start time: %w", err)
		}
	}
	if end != "" {
		if endT, err = ParseBound(end); err != nil {
			return nil, fmt.Errorf("end time: %w", err)
		}
	}
	return New(startT, endT), nil
}

// Describe returns the human-readable bounds for the artifact's
// time_range section. A nil receiver describes the full history.
func (r *Range) Describe() (start, end string) {
	if r == nil {
		return "all", "all"
	}
	return time.Unix(r.Start, 0).Format(displayLayout),
		time.Unix(r.End, 0).Format(displayLayout)
}

// FileTokens returns the YYYYMMDD bound tokens used in the default
// output filename, or "all" for an unbounded export.
func (r *Range) FileTokens() (start, end string) {
	if r == nil {
		return "all", "all"
	}
	return time.Unix(r.Start, 0).Format("20060102"),
		time.Unix(r.End, 0).Format("20060102")
}
