package service

import (
	"strings"
	"time"

	"github.com/spec-kit/pokebox/internal/auth"
	"github.com/spec-kit/pokebox/internal/config"
	apperrors "github.com/spec-kit/pokebox/pkg/util"
)

// AuthService issues bearer tokens for asserted identities. The identity is
// trusted on assertion; there is no account store to check it against.
type AuthService struct {
	tokens *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLMinutes)}
}

// IssueToken signs a credential for the given user identity.
func (s *AuthService) IssueToken(user string) (string, time.Time, error) {
	if strings.TrimSpace(user) == "" {
		return "", time.Time{}, apperrors.NewInvalidRequest(`Missing or invalid "user" in request body`)
	}
	return s.tokens.GenerateToken(user)
}

// TokenManager exposes the underlying manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
