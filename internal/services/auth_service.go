package services

import (
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/langexchange/langexchange-api/config"
	"github.com/langexchange/langexchange-api/pkg/jwt"
	"github.com/langexchange/langexchange-api/pkg/logger"
	"github.com/langexchange/langexchange-api/pkg/metrics"
)

// AuthService issues and verifies session tokens. Issuance trusts the
// caller-supplied identity; there is no credential check and no
// revocation, so any unexpired token signed with the secret is honored.
type AuthService struct {
	tokenManager *jwt.TokenManager
	cookieSecure bool
}

// NewAuthService creates an AuthService from the auth and server settings
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		tokenManager: jwt.NewTokenManager(cfg.Auth.AccessTokenSecret, jwt.DefaultTTL),
		cookieSecure: cfg.IsProduction(),
	}
}

// NewAuthServiceWithManager creates an AuthService around an existing token manager
func NewAuthServiceWithManager(tm *jwt.TokenManager, cookieSecure bool) *AuthService {
	return &AuthService{tokenManager: tm, cookieSecure: cookieSecure}
}

// IssueToken signs the identity into a token expiring after the token TTL
func (s *AuthService) IssueToken(identity jwt.Identity) (string, error) {
	token, err := s.tokenManager.Issue(identity)
	metrics.TokensIssued.WithLabelValues(metrics.StatusLabel(err)).Inc()
	if err != nil {
		logger.Error("Failed to issue session token", zap.Error(err))
		return "", err
	}

	logger.Debug("Session token issued", zap.String("email", identity.Email()))
	return token, nil
}

// VerifyToken returns the identity embedded in a valid, unexpired token
func (s *AuthService) VerifyToken(token string) (jwt.Identity, error) {
	identity, err := s.tokenManager.Verify(token)
	switch {
	case err == nil:
		metrics.TokenVerifications.WithLabelValues("valid").Inc()
	case stderrors.Is(err, jwt.ErrExpiredToken):
		metrics.TokenVerifications.WithLabelValues("expired").Inc()
	default:
		metrics.TokenVerifications.WithLabelValues("invalid").Inc()
	}
	return identity, err
}

// GetCookieSecure reports whether the session cookie is cross-site and
// Secure, which is the case in production only.
func (s *AuthService) GetCookieSecure() bool {
	return s.cookieSecure
}
