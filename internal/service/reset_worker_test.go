package service

import (
	"testing"
	"time"
)

func TestNextWeeklyReset(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"midweek",
			time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC), // Wednesday
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),   // next Monday
		},
		{
			"sunday evening",
			time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC),
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			"exactly at boundary rolls a full week",
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), // Monday 00:00
			time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday just after midnight",
			time.Date(2026, 8, 31, 0, 0, 1, 0, time.UTC),
			time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			"non-utc input normalized",
			time.Date(2026, 8, 30, 22, 0, 0, 0, time.FixedZone("CEST", 2*3600)), // Sunday 20:00 UTC
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextWeeklyReset(tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("NextWeeklyReset(%s) = %s, want %s", tt.now.Format(time.RFC3339), got.Format(time.RFC3339), tt.want.Format(time.RFC3339))
			}
			if !got.After(tt.now) {
				t.Errorf("reset time %s not strictly after now %s", got.Format(time.RFC3339), tt.now.Format(time.RFC3339))
			}
			if got.Weekday() != time.Monday {
				t.Errorf("reset weekday = %s, want Monday", got.Weekday())
			}
		})
	}
}
