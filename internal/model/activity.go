package model

import "time"

// ActivityRecord is a scheduled item in the activities collection. The
// notifier flips Notified to true after a push for it has been delivered;
// nothing in this codebase ever deletes one.
type ActivityRecord struct {
	ID        string    `firestore:"-" json:"id"`
	UID       string    `firestore:"uid" json:"uid"`
	Work      string    `firestore:"work" json:"work"`
	StartTime time.Time `firestore:"startTime" json:"start_time"`
	Notified  bool      `firestore:"notified" json:"notified"`
}

// IsDue reports whether the record should be picked up at the given instant
func (a *ActivityRecord) IsDue(now time.Time) bool {
	return !a.Notified && !a.StartTime.After(now)
}
