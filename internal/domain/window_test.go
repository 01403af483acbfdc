package domain

import (
	"testing"
	"time"
)

func sgLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	return loc
}

func TestStartOfWeek(t *testing.T) {
	loc := sgLocation(t)
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "wednesday",
			now:  time.Date(2025, 3, 12, 15, 30, 0, 0, loc),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			name: "monday maps to itself",
			now:  time.Date(2025, 3, 10, 0, 0, 1, 0, loc),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			name: "sunday maps to previous monday",
			now:  time.Date(2025, 3, 16, 23, 59, 0, 0, loc),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			name: "crosses month boundary",
			now:  time.Date(2025, 5, 1, 9, 0, 0, 0, loc),
			want: time.Date(2025, 4, 28, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.now, loc); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%s) = %s, want %s", tt.now, got, tt.want)
			}
		})
	}
}

func TestStartOfWeekConvertsToReferenceZone(t *testing.T) {
	loc := sgLocation(t)

	// 2025-03-09 18:00 UTC is already Monday 02:00 on 2025-03-10 in Singapore.
	now := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	if got := StartOfWeek(now, loc); !got.Equal(want) {
		t.Fatalf("StartOfWeek(%s) = %s, want %s", now, got, want)
	}
}

func TestStartOfMonth(t *testing.T) {
	loc := sgLocation(t)

	now := time.Date(2025, 3, 12, 15, 30, 0, 0, loc)
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, loc)

	if got := StartOfMonth(now, loc); !got.Equal(want) {
		t.Fatalf("StartOfMonth(%s) = %s, want %s", now, got, want)
	}
}

func TestDayBounds(t *testing.T) {
	loc := sgLocation(t)

	now := time.Date(2025, 3, 12, 15, 30, 0, 0, loc)
	start, end := DayBounds(now, loc)

	if !start.Equal(time.Date(2025, 3, 12, 0, 0, 0, 0, loc)) {
		t.Fatalf("start = %s", start)
	}
	if !end.Before(time.Date(2025, 3, 13, 0, 0, 0, 0, loc)) {
		t.Fatalf("end %s not before next midnight", end)
	}
	if end.Sub(start) < 24*time.Hour-time.Second {
		t.Fatalf("day span too short: %s", end.Sub(start))
	}
}
