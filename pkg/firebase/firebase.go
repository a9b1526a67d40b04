package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Verifier checks Firebase ID tokens. It wraps the Admin SDK's auth
// client and is created once at startup, then injected into the auth
// service rather than reached for as a global.
type Verifier struct {
	client *fbauth.Client
}

// NewVerifier initializes the Firebase app from inline credentials JSON
// (K8s Secret) or a credentials file path, whichever is set.
func NewVerifier(ctx context.Context, credentialsJSON, credentialsPath string) (*Verifier, error) {
	var opt option.ClientOption

	switch {
	case credentialsJSON != "":
		var credMap map[string]interface{}
		if err := json.Unmarshal([]byte(credentialsJSON), &credMap); err != nil {
			return nil, errors.New("FIREBASE_CREDENTIALS is not valid JSON")
		}
		opt = option.WithCredentialsJSON([]byte(credentialsJSON))
	case credentialsPath != "":
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			return nil, errors.New("firebase credentials file not found: " + credentialsPath)
		}
		opt = option.WithCredentialsFile(credentialsPath)
	default:
		return nil, errors.New("no firebase credentials configured")
	}

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return &Verifier{client: client}, nil
}

// Verify validates the provider-issued ID token (signature and claims
// are checked by the Admin SDK) and returns the subject id.
func (v *Verifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	return token.UID, nil
}
