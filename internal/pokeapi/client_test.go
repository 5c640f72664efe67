package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pokebox/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.PokeAPIConfig{BaseURL: srv.URL, TimeoutSeconds: 5})
}

func TestClient_GetPokemon(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon/pikachu", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 25,
			"name": "pikachu",
			"types": [{"type": {"name": "electric", "url": ""}}],
			"stats": [{"base_stat": 35, "stat": {"name": "hp", "url": ""}}],
			"moves": [{"move": {"name": "thunder-shock", "url": ""}}],
			"sprites": {"front_default": "front.png", "back_default": null, "front_shiny": "shiny.png", "back_shiny": null}
		}`))
	}))

	data, err := client.GetPokemon(context.Background(), "pikachu")
	require.NoError(t, err)

	assert.Equal(t, 25, data.ID)
	assert.Equal(t, "pikachu", data.Name)
	require.Len(t, data.Types, 1)
	assert.Equal(t, "electric", data.Types[0].Type.Name)
	require.Len(t, data.Stats, 1)
	assert.Equal(t, 35, data.Stats[0].BaseStat)
	require.Len(t, data.Moves, 1)
	assert.Equal(t, "thunder-shock", data.Moves[0].Move.Name)
	require.NotNil(t, data.Sprites.FrontDefault)
	assert.Equal(t, "front.png", *data.Sprites.FrontDefault)
	assert.Nil(t, data.Sprites.BackDefault)
}

func TestClient_GetSpeciesAndMove(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/pokemon-species/pikachu":
			_, _ = w.Write([]byte(`{
				"flavor_text_entries": [{"flavor_text": "Mouse.", "language": {"name": "en", "url": ""}}],
				"names": [{"name": "Pikachu", "language": {"name": "en", "url": ""}}]
			}`))
		case "/move/thunder-shock":
			_, _ = w.Write([]byte(`{
				"name": "thunder-shock",
				"power": 40,
				"type": {"name": "electric", "url": ""},
				"names": [{"name": "Thunder Shock", "language": {"name": "en", "url": ""}}]
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	species, err := client.GetSpecies(context.Background(), "pikachu")
	require.NoError(t, err)
	require.Len(t, species.FlavorTextEntries, 1)
	assert.Equal(t, "Mouse.", species.FlavorTextEntries[0].FlavorText)
	require.Len(t, species.Names, 1)
	assert.Equal(t, "Pikachu", species.Names[0].Name)

	move, err := client.GetMove(context.Background(), "thunder-shock")
	require.NoError(t, err)
	require.NotNil(t, move.Power)
	assert.Equal(t, 40, *move.Power)
	assert.Equal(t, "electric", move.Type.Name)
}

func TestClient_GetMove_NullPower(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "growl", "power": null, "type": {"name": "normal", "url": ""}, "names": []}`))
	}))

	move, err := client.GetMove(context.Background(), "growl")
	require.NoError(t, err)
	assert.Nil(t, move.Power)
}

func TestClient_ListPokemon(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "4", r.URL.Query().Get("offset"))
		_, _ = w.Write([]byte(`{"count": 1302, "results": [{"name": "charmander", "url": ""}, {"name": "squirtle", "url": ""}]}`))
	}))

	page, err := client.ListPokemon(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 1302, page.Count)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "charmander", page.Results[0].Name)
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetPokemon(context.Background(), "missingno")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClient_UpstreamError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.GetPokemon(context.Background(), "pikachu")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}
