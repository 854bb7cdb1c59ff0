package jobs

import (
	"testing"
	"time"
)

func TestOTASyncJob_IsDue(t *testing.T) {
	job := &OTASyncJob{}
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	past := func(minutes int) *time.Time {
		ts := now.Add(-time.Duration(minutes) * time.Minute)
		return &ts
	}

	cases := []struct {
		name       string
		lastSyncAt *time.Time
		frequency  int
		want       bool
	}{
		{"never synced", nil, 60, true},
		{"window elapsed", past(61), 60, true},
		{"window exactly elapsed", past(60), 60, true},
		{"window not elapsed", past(59), 60, false},
		{"zero frequency defaults to hourly", past(61), 0, true},
		{"zero frequency not due", past(30), 0, false},
		{"negative frequency defaults to hourly", past(30), -5, false},
		{"short window", past(6), 5, true},
	}

	for _, tc := range cases {
		if got := job.isDue(tc.lastSyncAt, tc.frequency, now); got != tc.want {
			t.Errorf("%s: isDue = %v, want %v", tc.name, got, tc.want)
		}
	}
}
