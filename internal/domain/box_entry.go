package domain

// BoxEntry is a single caught-Pokémon record owned by exactly one user.
// The struct doubles as the Redis-stored JSON document and the API response
// body, so field names follow the wire schema.
type BoxEntry struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"createdAt"`
	Level     int     `json:"level"`
	Location  string  `json:"location"`
	Notes     *string `json:"notes,omitempty"`
	PokemonID int     `json:"pokemonId"`
}
