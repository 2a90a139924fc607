package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Credentials are the service account fields supplied through the
// environment. They are assembled into the credentials JSON the Google
// SDKs expect, so deployments don't need a key file on disk.
type Credentials struct {
	ProjectID   string
	PrivateKey  string
	ClientEmail string
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

// NewApp initializes the Firebase Admin SDK once at process start. The
// returned app hands out the auth, Firestore and messaging clients and is
// held for the process lifetime.
func NewApp(ctx context.Context, creds Credentials) (*firebase.App, error) {
	if creds.ProjectID == "" || creds.PrivateKey == "" || creds.ClientEmail == "" {
		return nil, errors.New("firebase: incomplete service account credentials")
	}

	sa, err := json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   creds.ProjectID,
		PrivateKey:  creds.PrivateKey,
		ClientEmail: creds.ClientEmail,
		TokenURI:    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, fmt.Errorf("firebase: encode service account: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: creds.ProjectID},
		option.WithCredentialsJSON(sa))
	if err != nil {
		return nil, fmt.Errorf("firebase: initialize app: %w", err)
	}
	return app, nil
}
