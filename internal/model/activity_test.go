package model

import (
	"testing"
	"time"
)

func TestActivityRecordIsDue(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		rec  ActivityRecord
		want bool
	}{
		{"past and unnotified", ActivityRecord{StartTime: now.Add(-time.Minute)}, true},
		{"exactly now", ActivityRecord{StartTime: now}, true},
		{"in the future", ActivityRecord{StartTime: now.Add(time.Minute)}, false},
		{"already notified", ActivityRecord{StartTime: now.Add(-time.Minute), Notified: true}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.IsDue(now); got != tc.want {
				t.Errorf("IsDue = %v, want %v", got, tc.want)
			}
		})
	}
}
