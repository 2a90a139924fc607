package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/minhvuq/planora/internal/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UserRepository handles Firestore operations for User
type UserRepository struct {
	client     *firestore.Client
	collection string
}

func NewUserRepository(client *firestore.Client, collection string) *UserRepository {
	return &UserRepository{client: client, collection: collection}
}

// FindByID loads a user document by UID. Returns (nil, nil) when the
// document does not exist so callers can treat a missing user as a skip,
// not a failure.
func (r *UserRepository) FindByID(ctx context.Context, uid string) (*model.User, error) {
	doc, err := r.client.Collection(r.collection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", uid, err)
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", uid, err)
	}
	user.UID = doc.Ref.ID
	return &user, nil
}
