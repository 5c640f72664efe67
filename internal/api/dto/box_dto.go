package dto

// BoxEntryCreateRequest payload for new box entries. Notes is the only
// optional field.
type BoxEntryCreateRequest struct {
	CreatedAt string  `json:"createdAt"`
	Level     int     `json:"level"`
	Location  string  `json:"location"`
	Notes     *string `json:"notes"`
	PokemonID int     `json:"pokemonId"`
}

// BoxEntryUpdateRequest payload for partial updates; absent fields stay nil.
type BoxEntryUpdateRequest struct {
	CreatedAt *string `json:"createdAt"`
	Level     *int    `json:"level"`
	Location  *string `json:"location"`
	Notes     *string `json:"notes"`
	PokemonID *int    `json:"pokemonId"`
}
