package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/minhvuq/planora/internal/model"
	"google.golang.org/api/iterator"
)

// ActivityRepository handles Firestore operations for ActivityRecord
type ActivityRepository struct {
	client     *firestore.Client
	collection string
}

func NewActivityRepository(client *firestore.Client, collection string) *ActivityRepository {
	return &ActivityRepository{client: client, collection: collection}
}

// ListDue returns every record that has not been notified yet and whose
// start time is at or before now. Requires the composite index on
// (notified, startTime).
func (r *ActivityRepository) ListDue(ctx context.Context, now time.Time) ([]model.ActivityRecord, error) {
	iter := r.client.Collection(r.collection).
		Where("notified", "==", false).
		Where("startTime", "<=", now).
		Documents(ctx)
	defer iter.Stop()

	var records []model.ActivityRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query due activities: %w", err)
		}

		var rec model.ActivityRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("decode activity %s: %w", doc.Ref.ID, err)
		}
		rec.ID = doc.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}

// MarkNotified flips notified to true for all given record ids in a single
// batched write.
func (r *ActivityRepository) MarkNotified(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, id := range ids {
		batch.Update(r.client.Collection(r.collection).Doc(id), []firestore.Update{
			{Path: "notified", Value: true},
		})
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("commit notified batch: %w", err)
	}
	return nil
}
