package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pokebox/internal/api/dto"
	"github.com/spec-kit/pokebox/internal/auth"
	"github.com/spec-kit/pokebox/internal/service"
	apperrors "github.com/spec-kit/pokebox/pkg/util"
)

// BoxHandler exposes authenticated CRUD over the caller's box.
type BoxHandler struct {
	box *service.BoxService
}

// NewBoxHandler constructs handler.
func NewBoxHandler(boxService *service.BoxService) *BoxHandler {
	return &BoxHandler{box: boxService}
}

// List handles GET /box.
func (h *BoxHandler) List(c *fiber.Ctx) error {
	user, err := requireIdentity(c)
	if err != nil {
		return err
	}

	ids, err := h.box.List(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(ids)
}

// Create handles POST /box.
func (h *BoxHandler) Create(c *fiber.Ctx) error {
	user, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.BoxEntryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidRequest("Invalid Box entry data")
	}

	entry, err := h.box.Create(c.UserContext(), user, service.BoxEntryCreateInput{
		CreatedAt: req.CreatedAt,
		Level:     req.Level,
		Location:  req.Location,
		Notes:     req.Notes,
		PokemonID: req.PokemonID,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(entry)
}

// Get handles GET /box/:id.
func (h *BoxHandler) Get(c *fiber.Ctx) error {
	user, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := requireEntryID(c)
	if err != nil {
		return err
	}

	entry, err := h.box.Get(c.UserContext(), user, id)
	if err != nil {
		return err
	}
	return c.JSON(entry)
}

// Update handles PUT /box/:id.
func (h *BoxHandler) Update(c *fiber.Ctx) error {
	user, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := requireEntryID(c)
	if err != nil {
		return err
	}

	var req dto.BoxEntryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		// existence still wins over a malformed body: a missing entry
		// reports NOT_FOUND even when the payload cannot be decoded
		if _, getErr := h.box.Get(c.UserContext(), user, id); getErr != nil {
			return getErr
		}
		return apperrors.NewInvalidRequest("Invalid Box entry update")
	}

	entry, err := h.box.Update(c.UserContext(), user, id, service.BoxEntryUpdateInput{
		CreatedAt: req.CreatedAt,
		Level:     req.Level,
		Location:  req.Location,
		Notes:     req.Notes,
		PokemonID: req.PokemonID,
	})
	if err != nil {
		return err
	}
	return c.JSON(entry)
}

// Delete handles DELETE /box/:id.
func (h *BoxHandler) Delete(c *fiber.Ctx) error {
	user, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := requireEntryID(c)
	if err != nil {
		return err
	}

	if err := h.box.Delete(c.UserContext(), user, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Clear handles DELETE /box.
func (h *BoxHandler) Clear(c *fiber.Ctx) error {
	user, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.box.Clear(c.UserContext(), user); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func requireIdentity(c *fiber.Ctx) (string, error) {
	user, ok := auth.IdentityFromContext(c)
	if !ok {
		return "", apperrors.NewUnauthorized("Missing or invalid token")
	}
	return user, nil
}

func requireEntryID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if id == "" {
		return "", apperrors.NewInvalidRequest("Missing Box entry id")
	}
	return id, nil
}
