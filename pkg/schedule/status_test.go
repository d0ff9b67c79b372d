package schedule

import (
	"testing"
	"time"
)

func TestResolveStatus(t *testing.T) {
	// Fixed "now": Wednesday, June 12, 2024, mid-afternoon UTC.
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      string
		completed bool
		want      TaskStatus
	}{
		{"yesterday completed", "2024-06-11", true, TaskStatusCompleted},
		{"yesterday incomplete", "2024-06-11", false, TaskStatusMissed},
		{"today incomplete", "2024-06-12", false, TaskStatusToday},
		{"today completed", "2024-06-12", true, TaskStatusCompleted},
		{"tomorrow incomplete", "2024-06-13", false, TaskStatusUpcoming},
		{"tomorrow completed", "2024-06-13", true, TaskStatusUpcoming},
		{"far past completed", "2024-01-02", true, TaskStatusCompleted},
		{"far future", "2025-01-01", false, TaskStatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveStatus(tt.date, tt.completed, now); got != tt.want {
				t.Errorf("ResolveStatus(%s, %v) = %s, want %s", tt.date, tt.completed, got, tt.want)
			}
		})
	}
}

func TestResolveStatusIgnoresTimeOfDay(t *testing.T) {
	justAfterMidnight := time.Date(2024, 6, 12, 0, 0, 1, 0, time.UTC)
	justBeforeMidnight := time.Date(2024, 6, 12, 23, 59, 59, 0, time.UTC)

	for _, now := range []time.Time{justAfterMidnight, justBeforeMidnight} {
		if got := ResolveStatus("2024-06-12", false, now); got != TaskStatusToday {
			t.Errorf("at %v: got %s, want %s", now, got, TaskStatusToday)
		}
	}
}

func TestResolveStatusMalformedDate(t *testing.T) {
	now := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	if got := ResolveStatus("garbage", false, now); got != TaskStatusUpcoming {
		t.Errorf("malformed date resolved to %s, want %s", got, TaskStatusUpcoming)
	}
}
