package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pokebox/internal/api/dto"
	"github.com/spec-kit/pokebox/internal/service"
	apperrors "github.com/spec-kit/pokebox/pkg/util"
)

// PokemonHandler exposes the unauthenticated catalog endpoints.
type PokemonHandler struct {
	pokemon *service.PokemonService
}

// NewPokemonHandler constructs handler.
func NewPokemonHandler(pokemonService *service.PokemonService) *PokemonHandler {
	return &PokemonHandler{pokemon: pokemonService}
}

// List handles GET /pokemon.
func (h *PokemonHandler) List(c *fiber.Ctx) error {
	query, err := dto.ParsePageQuery(c.Query("limit"), c.Query("offset"))
	if err != nil {
		return err
	}

	records, err := h.pokemon.ListPage(c.UserContext(), query.Limit, query.Offset)
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// Get handles GET /pokemon/:name.
func (h *PokemonHandler) Get(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return apperrors.NewInvalidRequest("Missing name")
	}

	record, err := h.pokemon.GetByName(c.UserContext(), name)
	if err != nil {
		return err
	}
	return c.JSON(record)
}
