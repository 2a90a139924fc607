package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/minhvuq/planora/internal/model"
)

// ActivityStore is the slice of the activity repository the notifier needs
type ActivityStore interface {
	ListDue(ctx context.Context, now time.Time) ([]model.ActivityRecord, error)
	MarkNotified(ctx context.Context, ids []string) error
}

// UserStore looks up notification targets
type UserStore interface {
	FindByID(ctx context.Context, uid string) (*model.User, error)
}

// PushSender delivers one message. *messaging.Client satisfies it.
type PushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NotifierService runs the scheduled notification pass: find due activity
// records, push one notification per record, then mark the successfully
// pushed records as notified in a single batched write.
type NotifierService struct {
	activities ActivityStore
	users      UserStore
	sender     PushSender
}

func NewNotifierService(activities ActivityStore, users UserStore, sender PushSender) *NotifierService {
	return &NotifierService{
		activities: activities,
		users:      users,
		sender:     sender,
	}
}

// RunOnce performs one tick. Per-record failures are logged and skipped so
// the record stays eligible for the next tick; a failed query aborts the
// whole tick with no writes.
func (s *NotifierService) RunOnce(ctx context.Context) {
	runID := uuid.New().String()[:8]
	now := time.Now()
	log.Printf("⏰ [%s] Checking for activities to notify at %s", runID, now.UTC().Format(time.RFC3339))

	due, err := s.activities.ListDue(ctx, now)
	if err != nil {
		log.Printf("🔥 [%s] Activity query failed (missing index?): %v", runID, err)
		return
	}
	if len(due) == 0 {
		log.Printf("✅ [%s] No pending notifications at this time", runID)
		return
	}

	var (
		mu       sync.Mutex
		notified []string
		skipped  int
	)

	// Records are independent, so fan out and join before the batch write.
	var wg sync.WaitGroup
	for _, rec := range due {
		wg.Add(1)
		go func(rec model.ActivityRecord) {
			defer wg.Done()

			if s.processRecord(ctx, runID, rec) {
				mu.Lock()
				notified = append(notified, rec.ID)
				mu.Unlock()
				return
			}
			mu.Lock()
			skipped++
			mu.Unlock()
		}(rec)
	}
	wg.Wait()

	if len(notified) > 0 {
		if err := s.activities.MarkNotified(ctx, notified); err != nil {
			// Pushes already went out; the records stay eligible and the
			// next tick will send duplicates. Accepted at-least-once.
			log.Printf("🔥 [%s] Failed to mark %d records as notified: %v", runID, len(notified), err)
			return
		}
	}

	log.Printf("🎉 [%s] Run complete: %d sent & marked, %d skipped", runID, len(notified), skipped)
}

// processRecord looks up the owner and sends the push. Returns true when
// the send succeeded and the record should be marked as notified.
func (s *NotifierService) processRecord(ctx context.Context, runID string, rec model.ActivityRecord) bool {
	user, err := s.users.FindByID(ctx, rec.UID)
	if err != nil {
		log.Printf("❌ [%s] Failed to load user %s for activity %s: %v", runID, rec.UID, rec.ID, err)
		return false
	}
	if !user.HasPushToken() {
		log.Printf("⚠️  [%s] No FCM token for user %s", runID, rec.UID)
		return false
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: "Activity Reminder",
			Body:  fmt.Sprintf("Your activity \"%s\" is starting now.", rec.Work),
		},
		Data: map[string]string{
			"activityId": rec.ID,
		},
	}

	if _, err := s.sender.Send(ctx, msg); err != nil {
		log.Printf("❌ [%s] Failed to send notification to %s for activity %s: %v", runID, rec.UID, rec.ID, err)
		return false
	}

	log.Printf("✅ [%s] Notification sent to %s for activity %s", runID, rec.UID, rec.ID)
	return true
}
