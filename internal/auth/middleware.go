package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/pokebox/pkg/util"
)

const identityKey = "auth_identity"

// AuthMiddleware validates bearer tokens and resolves the caller identity.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Verification is
// stateless: no revocation list, no session store.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("Missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return apperrors.NewUnauthorized("Invalid Authorization header format")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("Invalid or expired token")
	}
	if claims.User == "" {
		return apperrors.NewUnauthorized("Invalid or expired token")
	}

	c.Locals(identityKey, claims.User)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated user identity.
func IdentityFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return "", false
	}
	user, ok := val.(string)
	return user, ok && user != ""
}
