package dateutil

import (
	"testing"
	"time"
)

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"monday", "2024-01-01", false},
		{"friday", "2024-01-05", false},
		{"saturday", "2024-01-06", true},
		{"sunday", "2024-01-07", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := Parse(tt.date)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.date, err)
			}
			if got := IsWeekend(day); got != tt.want {
				t.Errorf("IsWeekend(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
	night := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Error("expected times on the same day to compare equal")
	}
	if SameDay(night, nextDay) {
		t.Error("expected midnight boundary to separate days")
	}
}

func TestPreviousWorkday(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"monday goes back to friday", "2024-01-08", "2024-01-05"},
		{"tuesday goes back to monday", "2024-01-09", "2024-01-08"},
		{"friday goes back to thursday", "2024-01-05", "2024-01-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := Parse(tt.date)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.date, err)
			}
			if got := Format(PreviousWorkday(day)); got != tt.want {
				t.Errorf("PreviousWorkday(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestParseRejectsMalformedDates(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "01/02/2024", "not-a-date"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestNormalizeStripsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 08:00 JST is 23:00 UTC the previous day; normalization follows UTC.
	local := time.Date(2024, 3, 16, 8, 0, 0, 0, loc)
	got := Normalize(local)
	want := time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)
	if Format(got) != Format(want) {
		t.Errorf("Normalize(%v) = %v, want day %s", local, got, Format(want))
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("Normalize should land on midnight, got %v", got)
	}
}
