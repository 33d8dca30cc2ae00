package timerange

import (
	"errors"
	"testing"
	"time"
)

func TestParseBound(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		want  time.Time
	}{
		{"full datetime", "2023-01-15 08:30:00", time.Date(2023, 1, 15, 8, 30, 0, 0, time.Local)},
		{"date only is local midnight", "2023-01-15", time.Date(2023, 1, 15, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := ParseBound(tt.input)
			if err != nil {
				t.Fatalf("ParseBound(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseBound(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBoundRejectsGarbage(t *testing.T) {
	for _, input := range []string{"15/01/2023", "2023-13-99", "yesterday", ""} {
		_, err := ParseBound(input)
		if err == nil {
			t.Errorf("ParseBound(%q) expected error", input)
			continue
		}
		if !errors.Is(err, ErrBadFormat) {
			t.Errorf("ParseBound(%q) error = %v, want ErrBadFormat", input, err)
		}
	}
}

func TestFromStringsBothEmpty(t *testing.T) {
	r, err := FromStrings("", "")
	if err != nil {
		t.Fatalf("FromStrings error = %v", err)
	}
	if r != nil {
		t.Errorf("FromStrings(\"\", \"\") = %+v, want nil (full history)", r)
	}
}

func TestFromStringsDefaults(t *testing.T) {
	t.Run("absent start is epoch", func(t *testing.T) {
		r, err := FromStrings("", "2023-01-31")
		if err != nil {
			t.Fatal(err)
		}
		if r.Start != 0 {
			t.Errorf("Start = %d, want 0", r.Start)
		}
		want := time.Date(2023, 1, 31, 0, 0, 0, 0, time.Local).Unix()
		if r.End != want {
			t.Errorf("End = %d, want %d", r.End, want)
		}
	})

	t.Run("absent end is now", func(t *testing.T) {
		before := time.Now().Unix()
		r, err := FromStrings("2023-01-01", "")
		if err != nil {
			t.Fatal(err)
		}
		after := time.Now().Unix()
		if r.End < before || r.End > after {
			t.Errorf("End = %d, want within [%d, %d]", r.End, before, after)
		}
	})
}

func TestFromStringsBadInput(t *testing.T) {
	if _, err := FromStrings("not-a-date", ""); !errors.Is(err, ErrBadFormat) {
		t.Errorf("error = %v, want ErrBadFormat", err)
	}
	if _, err := FromStrings("2023-01-01", "not-a-date"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("error = %v, want ErrBadFormat", err)
	}
}

func TestDescribe(t *testing.T) {
	var nilRange *Range
	start, end := nilRange.Describe()
	if start != "all" || end != "all" {
		t.Errorf("nil Describe() = %q, %q, want all, all", start, end)
	}

	startT := time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local)
	endT := time.Date(2023, 1, 31, 23, 59, 59, 0, time.Local)
	start, end = New(startT, endT).Describe()
	if start != "2023-01-01 00:00:00" {
		t.Errorf("start = %q", start)
	}
	if end != "2023-01-31 23:59:59" {
		t.Errorf("end = %q", end)
	}
}

func TestFileTokens(t *testing.T) {
	var nilRange *Range
	start, end := nilRange.FileTokens()
	if start != "all" || end != "all" {
		t.Errorf("nil FileTokens() = %q, %q, want all, all", start, end)
	}

	r := New(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2023, 1, 31, 0, 0, 0, 0, time.Local),
	)
	start, end = r.FileTokens()
	if start != "20230101" || end != "20230131" {
		t.Errorf("FileTokens() = %q, %q", start, end)
	}
}
