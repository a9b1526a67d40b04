package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/config"
	"github.com/HirokiTakaya/Dine-Saver-Web/pkg/auth"
)

type fakeVerifier struct {
	uid string
	err error
}

func (f *fakeVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.uid, nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:    "test-secret",
		SessionTokenTTL: time.Hour,
	}
}

func TestExchangeToken(t *testing.T) {
	s := NewAuthService(&fakeVerifier{uid: "firebase-uid-1"}, testAuthConfig())

	token, err := s.ExchangeToken(context.Background(), "valid-id-token")
	if err != nil {
		t.Fatalf("ExchangeToken: %v", err)
	}

	claims, err := auth.ValidateSessionToken(token, "test-secret")
	if err != nil {
		t.Fatalf("minted token does not validate: %v", err)
	}
	if claims.UID != "firebase-uid-1" {
		t.Errorf("uid = %q, want firebase-uid-1", claims.UID)
	}
}

func TestExchangeTokenMissing(t *testing.T) {
	s := NewAuthService(&fakeVerifier{uid: "u"}, testAuthConfig())

	_, err := s.ExchangeToken(context.Background(), "")
	if !apperrors.IsKind(err, apperrors.Auth) {
		t.Errorf("error = %v, want Auth", err)
	}
}

func TestExchangeTokenVerifierRejects(t *testing.T) {
	s := NewAuthService(&fakeVerifier{err: errors.New("token expired")}, testAuthConfig())

	_, err := s.ExchangeToken(context.Background(), "stale-token")
	if !apperrors.IsKind(err, apperrors.Auth) {
		t.Errorf("error = %v, want Auth", err)
	}
}

func TestExchangeTokenNoVerifier(t *testing.T) {
	s := NewAuthService(nil, testAuthConfig())

	_, err := s.ExchangeToken(context.Background(), "any-token")
	if !apperrors.IsKind(err, apperrors.Auth) {
		t.Errorf("error = %v, want Auth", err)
	}
}
