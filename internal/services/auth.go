package services

import (
	"context"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/config"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/logger"
	"github.com/HirokiTakaya/Dine-Saver-Web/pkg/auth"
	"go.uber.org/zap"
)

// TokenVerifier validates a provider-issued ID token and returns its
// subject id. The real implementation delegates to the Firebase Admin
// SDK (pkg/firebase).
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}

// AuthService exchanges a third-party identity token for a locally
// signed session token. No refresh mechanism, no partial success.
type AuthService struct {
	verifier TokenVerifier
	cfg      *config.Config
	log      *zap.SugaredLogger
}

func NewAuthService(verifier TokenVerifier, cfg *config.Config) *AuthService {
	return &AuthService{verifier: verifier, cfg: cfg, log: logger.GetLogger("auth")}
}

// ExchangeToken verifies the provider ID token and mints a session
// token carrying only the provider subject id, with a 1-hour default
// expiry. Any verification failure is an auth error.
func (s *AuthService) ExchangeToken(ctx context.Context, providerIDToken string) (string, error) {
	if providerIDToken == "" {
		return "", apperrors.New(apperrors.Auth, "missing provider token")
	}
	if s.verifier == nil {
		return "", apperrors.New(apperrors.Auth, "identity provider not configured")
	}

	uid, err := s.verifier.Verify(ctx, providerIDToken)
	if err != nil {
		return "", apperrors.Wrap(apperrors.Auth, "invalid provider token", err)
	}

	sessionToken, err := auth.GenerateSessionToken(uid, s.cfg.JWTSecretKey, s.cfg.SessionTokenTTL)
	if err != nil {
		return "", apperrors.Wrap(apperrors.Upstream, "failed to sign session token", err)
	}

	s.log.Infow("session token issued", "uid", uid)
	return sessionToken, nil
}
