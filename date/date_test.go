package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2022-03-17", New(2022, 3, 17)},
		{"2022-3-7", New(2022, 3, 7)},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := Parse("03/17/2022"); err == nil {
		t.Error("Parse() accepted a US-formatted date")
	}
}

func TestParseUS(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"03/17/2022", New(2022, 3, 17)},
		{"3/7/2022", New(2022, 3, 7)},
	}
	for _, tc := range testCases {
		got, err := ParseUS(tc.in)
		if err != nil {
			t.Errorf("ParseUS(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseUS(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseUS("2022-03-17"); err == nil {
		t.Error("ParseUS() accepted an ISO date")
	}
}

func TestDate_Time(t *testing.T) {
	got := New(2022, 3, 17).Time()
	want := time.Date(2022, 3, 17, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestDate_Add_normalizes(t *testing.T) {
	if got := New(2022, 3, 31).Add(1); got != New(2022, 4, 1) {
		t.Errorf("Add(1) = %v, want 2022-04-01", got)
	}
	if got := New(2022, 1, 32); got != New(2022, 2, 1) {
		t.Errorf("New(2022, 1, 32) = %v, want 2022-02-01", got)
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(New(2022, 3, 14), New(2022, 3, 18))
	testCases := []struct {
		d    Date
		want bool
	}{
		{New(2022, 3, 13), false},
		{New(2022, 3, 14), true}, // lower bound inclusive
		{New(2022, 3, 16), true},
		{New(2022, 3, 18), true}, // upper bound inclusive
		{New(2022, 3, 19), false},
	}
	for _, tc := range testCases {
		if got := r.Contains(tc.d); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestRange_openBounds(t *testing.T) {
	noStart := Range{To: New(2022, 3, 18)}
	if !noStart.Contains(New(1970, 1, 1)) {
		t.Error("open start bound should impose no restriction")
	}
	if noStart.Contains(New(2022, 3, 19)) {
		t.Error("upper bound ignored")
	}

	noEnd := Range{From: New(2022, 3, 14)}
	if !noEnd.Contains(New(2100, 1, 1)) {
		t.Error("open end bound should impose no restriction")
	}

	var all Range
	if !all.IsZero() || !all.Contains(New(2022, 3, 17)) {
		t.Error("the zero range should contain every date")
	}
}

func TestRange_ContainsTime(t *testing.T) {
	r := NewRange(New(2022, 3, 14), New(2022, 3, 18))
	// An instant a few seconds into the last day still belongs to it.
	if !r.ContainsTime(time.Date(2022, 3, 18, 0, 0, 3, 0, time.UTC)) {
		t.Error("instants within the last day should be contained")
	}
	if r.ContainsTime(time.Date(2022, 3, 19, 0, 0, 0, 0, time.UTC)) {
		t.Error("the day after the upper bound should not be contained")
	}
}

func TestDate_yamlRoundTrip(t *testing.T) {
	d := New(2022, 3, 17)
	v, err := d.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	if v != "2022-03-17" {
		t.Errorf("MarshalYAML() = %v, want 2022-03-17", v)
	}

	var back Date
	err = back.UnmarshalYAML(func(out any) error {
		*(out.(*string)) = "2022-03-17"
		return nil
	})
	if err != nil {
		t.Fatalf("UnmarshalYAML() error = %v", err)
	}
	if back != d {
		t.Errorf("UnmarshalYAML() = %v, want %v", back, d)
	}

	var zero Date
	err = zero.UnmarshalYAML(func(out any) error {
		*(out.(*string)) = ""
		return nil
	})
	if err != nil {
		t.Fatalf("UnmarshalYAML(\"\") error = %v", err)
	}
	if !zero.IsZero() {
		t.Errorf("UnmarshalYAML(\"\") = %v, want the zero date", zero)
	}
}
