package domain

// PokemonType is a simplified type tag. Name is uppercased; Color is a display
// hint (currently a constant placeholder, no real type-to-color table exists).
type PokemonType struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// PokemonMove is a reshaped move record. Power is absent when the raw value is
// missing or not positive.
type PokemonMove struct {
	Name  string      `json:"name"`
	Power *int        `json:"power,omitempty"`
	Type  PokemonType `json:"type"`
}

// PokemonSprites carries the four standard sprite URLs, empty string when the
// upstream has none.
type PokemonSprites struct {
	FrontDefault string `json:"front_default"`
	BackDefault  string `json:"back_default"`
	FrontShiny   string `json:"front_shiny"`
	BackShiny    string `json:"back_shiny"`
}

// PokemonStats is the fixed set of six base stats.
type PokemonStats struct {
	HP             int `json:"hp"`
	Speed          int `json:"speed"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"specialAttack"`
	SpecialDefense int `json:"specialDefense"`
}

// Pokemon is the reshaped catalog record served to clients. It is never
// persisted; every request rebuilds it from the upstream source.
type Pokemon struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Types       []PokemonType  `json:"types"`
	Moves       []PokemonMove  `json:"moves"`
	Sprites     PokemonSprites `json:"sprites"`
	Stats       PokemonStats   `json:"stats"`
}
