package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pokebox/internal/api/dto"
	"github.com/spec-kit/pokebox/internal/service"
	apperrors "github.com/spec-kit/pokebox/pkg/util"
)

// TokenHandler exposes the unauthenticated token issuance endpoint.
type TokenHandler struct {
	auth *service.AuthService
}

// NewTokenHandler constructs handler.
func NewTokenHandler(authService *service.AuthService) *TokenHandler {
	return &TokenHandler{auth: authService}
}

// Issue handles POST /token.
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidRequest(`Missing or invalid "user" in request body`)
	}

	token, _, err := h.auth.IssueToken(req.User)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.TokenResponse{Token: token})
}
