package auth

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

// TokenVerifier checks a Firebase ID token. *fbauth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// InitFirebase builds the Firebase Auth client from the service account JSON held in the
// environment, not from a file.
func InitFirebase(ctx context.Context, credentialsJSON, projectID string) (*fbauth.Client, error) {
	if credentialsJSON == "" || projectID == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS_JSON and FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credentialsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("get firebase auth client: %w", err)
	}
	return client, nil
}
