// Package pokeapi is a minimal typed client for the PokeAPI reference catalog.
// Raw upstream payloads are decoded into explicit DTOs at this boundary so the
// rest of the service never touches untyped JSON.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/pokebox/internal/config"
)

// ErrNotFound reports that the upstream catalog has no matching record.
var ErrNotFound = errors.New("pokeapi: resource not found")

// NamedResource is the upstream {name, url} reference pair.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LocalizedName is a display name in one language.
type LocalizedName struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// FlavorText is one description entry in one language.
type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
}

// TypeSlot references one of a record's types.
type TypeSlot struct {
	Type NamedResource `json:"type"`
}

// StatSlot is one named base stat value.
type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// MoveSlot references one of a record's moves.
type MoveSlot struct {
	Move NamedResource `json:"move"`
}

// SpriteSet carries the raw sprite URLs; null upstream values stay nil.
type SpriteSet struct {
	FrontDefault *string `json:"front_default"`
	BackDefault  *string `json:"back_default"`
	FrontShiny   *string `json:"front_shiny"`
	BackShiny    *string `json:"back_shiny"`
}

// PokemonData is the raw /pokemon/{name} payload, trimmed to the fields the
// service consumes.
type PokemonData struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Types   []TypeSlot `json:"types"`
	Stats   []StatSlot `json:"stats"`
	Moves   []MoveSlot `json:"moves"`
	Sprites SpriteSet  `json:"sprites"`
}

// SpeciesData is the raw /pokemon-species/{name} payload.
type SpeciesData struct {
	FlavorTextEntries []FlavorText    `json:"flavor_text_entries"`
	Names             []LocalizedName `json:"names"`
}

// MoveData is the raw /move/{name} payload.
type MoveData struct {
	Name  string          `json:"name"`
	Power *int            `json:"power"`
	Type  NamedResource   `json:"type"`
	Names []LocalizedName `json:"names"`
}

// Page is one window of the paginated /pokemon listing.
type Page struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// Client talks to the PokeAPI over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client from configuration.
func NewClient(cfg config.PokeAPIConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// GetPokemon fetches the primary record by name.
func (c *Client) GetPokemon(ctx context.Context, name string) (*PokemonData, error) {
	var data PokemonData
	if err := c.getJSON(ctx, "/pokemon/"+url.PathEscape(name), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetSpecies fetches the linked species record by name.
func (c *Client) GetSpecies(ctx context.Context, name string) (*SpeciesData, error) {
	var data SpeciesData
	if err := c.getJSON(ctx, "/pokemon-species/"+url.PathEscape(name), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetMove fetches one move record by name.
func (c *Client) GetMove(ctx context.Context, name string) (*MoveData, error) {
	var data MoveData
	if err := c.getJSON(ctx, "/move/"+url.PathEscape(name), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ListPokemon fetches one pagination window of the catalog listing.
func (c *Client) ListPokemon(ctx context.Context, limit, offset int) (*Page, error) {
	var page Page
	path := fmt.Sprintf("/pokemon?limit=%d&offset=%d", limit, offset)
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("pokeapi: unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("pokeapi: decode %s: %w", path, err)
	}
	return nil
}
