package service

import (
	"time"

	apperrors "github.com/spec-kit/pokebox/pkg/util"
)

// BoxEntryCreateInput describes the box entry creation payload. Every field
// except Notes is required.
type BoxEntryCreateInput struct {
	CreatedAt string  `json:"createdAt"`
	Level     int     `json:"level"`
	Location  string  `json:"location"`
	Notes     *string `json:"notes"`
	PokemonID int     `json:"pokemonId"`
}

// BoxEntryUpdateInput describes a partial update. Only non-nil fields are
// validated and applied.
type BoxEntryUpdateInput struct {
	CreatedAt *string `json:"createdAt"`
	Level     *int    `json:"level"`
	Location  *string `json:"location"`
	Notes     *string `json:"notes"`
	PokemonID *int    `json:"pokemonId"`
}

// Validate checks every create field against the entry schema.
func (in BoxEntryCreateInput) Validate() error {
	details := map[string]any{}
	validateCreatedAt(in.CreatedAt, details)
	validateLevel(in.Level, details)
	validateLocation(in.Location, details)
	validatePokemonID(in.PokemonID, details)
	if len(details) > 0 {
		return apperrors.NewValidationError("Invalid Box entry data", details)
	}
	return nil
}

// Validate checks only the supplied update fields.
func (in BoxEntryUpdateInput) Validate() error {
	details := map[string]any{}
	if in.CreatedAt != nil {
		validateCreatedAt(*in.CreatedAt, details)
	}
	if in.Level != nil {
		validateLevel(*in.Level, details)
	}
	if in.Location != nil {
		validateLocation(*in.Location, details)
	}
	if in.PokemonID != nil {
		validatePokemonID(*in.PokemonID, details)
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("Invalid Box entry update", details)
	}
	return nil
}

func validateCreatedAt(value string, details map[string]any) {
	if _, err := time.Parse(time.RFC3339, value); err != nil {
		details["createdAt"] = "must be an ISO-8601 datetime string"
	}
}

func validateLevel(level int, details map[string]any) {
	if level < 1 || level > 100 {
		details["level"] = "must be an integer between 1 and 100"
	}
}

func validateLocation(location string, details map[string]any) {
	if location == "" {
		details["location"] = "must be a non-empty string"
	}
}

func validatePokemonID(id int, details map[string]any) {
	if id <= 0 {
		details["pokemonId"] = "must be a positive integer"
	}
}
