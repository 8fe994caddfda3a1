package pacfolio

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-08-29", want: NewDate(2026, time.August, 29)},
		{in: "2026-8-9", want: NewDate(2026, time.August, 9)},
		{in: "2026-08", want: NewDate(2026, time.August, 1)},
		{in: "2026-8", want: NewDate(2026, time.August, 1)},
		{in: "29-08-2026", wantErr: true},
		{in: "2026/08/29", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error, got %s", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_ordering(t *testing.T) {
	a := MustParseDate("2026-01-15")
	b := MustParseDate("2026-02-01")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before broken for %s and %s", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After broken for %s and %s", a, b)
	}
}

func TestDate_AddYears(t *testing.T) {
	d := MustParseDate("2026-08-29").AddYears(10)
	if d.Year() != 2036 || d.Month() != time.August || d.Day() != 29 {
		t.Errorf("AddYears(10) = %s, want 2036-08-29", d)
	}
}

func TestDate_normalization(t *testing.T) {
	// Overflow normalizes the way time.Date does.
	d := NewDate(2026, time.January, 32)
	if d.String() != "2026-02-01" {
		t.Errorf("NewDate(2026, 1, 32) = %s, want 2026-02-01", d)
	}
}

func TestDate_zero(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if Today().IsZero() {
		t.Error("Today() should not be zero")
	}
}
