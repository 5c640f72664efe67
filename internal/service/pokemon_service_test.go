package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spec-kit/pokebox/internal/pokeapi"
	apperrors "github.com/spec-kit/pokebox/pkg/util"
)

// -------- test fakes --------

type fakeCatalog struct {
	pokemon map[string]*pokeapi.PokemonData
	species map[string]*pokeapi.SpeciesData
	moves   map[string]*pokeapi.MoveData
	page    *pokeapi.Page

	moveErr error
	pageErr error
}

func (f *fakeCatalog) GetPokemon(_ context.Context, name string) (*pokeapi.PokemonData, error) {
	data, ok := f.pokemon[name]
	if !ok {
		return nil, pokeapi.ErrNotFound
	}
	return data, nil
}

func (f *fakeCatalog) GetSpecies(_ context.Context, name string) (*pokeapi.SpeciesData, error) {
	data, ok := f.species[name]
	if !ok {
		return nil, pokeapi.ErrNotFound
	}
	return data, nil
}

func (f *fakeCatalog) GetMove(_ context.Context, name string) (*pokeapi.MoveData, error) {
	if f.moveErr != nil {
		return nil, f.moveErr
	}
	data, ok := f.moves[name]
	if !ok {
		return nil, pokeapi.ErrNotFound
	}
	return data, nil
}

func (f *fakeCatalog) ListPokemon(_ context.Context, limit, offset int) (*pokeapi.Page, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	if f.page == nil {
		return &pokeapi.Page{}, nil
	}
	results := f.page.Results
	if offset < len(results) {
		results = results[offset:]
	} else {
		results = nil
	}
	if limit < len(results) {
		results = results[:limit]
	}
	return &pokeapi.Page{Count: len(f.page.Results), Results: results}, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func charmanderData() *pokeapi.PokemonData {
	return &pokeapi.PokemonData{
		ID:   4,
		Name: "charmander",
		Types: []pokeapi.TypeSlot{
			{Type: pokeapi.NamedResource{Name: "fire"}},
		},
		Stats: []pokeapi.StatSlot{
			{BaseStat: 39, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 65, Stat: pokeapi.NamedResource{Name: "speed"}},
			{BaseStat: 52, Stat: pokeapi.NamedResource{Name: "attack"}},
			{BaseStat: 43, Stat: pokeapi.NamedResource{Name: "defense"}},
			{BaseStat: 60, Stat: pokeapi.NamedResource{Name: "special-attack"}},
			{BaseStat: 50, Stat: pokeapi.NamedResource{Name: "special-defense"}},
		},
		Moves: []pokeapi.MoveSlot{
			{Move: pokeapi.NamedResource{Name: "scratch"}},
			{Move: pokeapi.NamedResource{Name: "growl"}},
		},
		Sprites: pokeapi.SpriteSet{
			FrontDefault: strPtr("https://sprites/front.png"),
			BackShiny:    strPtr("https://sprites/back-shiny.png"),
		},
	}
}

func charmanderSpecies() *pokeapi.SpeciesData {
	return &pokeapi.SpeciesData{
		FlavorTextEntries: []pokeapi.FlavorText{
			{FlavorText: "Obviamente prefiere\nlugares calientes.", Language: pokeapi.NamedResource{Name: "es"}},
			{FlavorText: "Obviously prefers\nhot places.", Language: pokeapi.NamedResource{Name: "en"}},
		},
		Names: []pokeapi.LocalizedName{
			{Name: "Glumanda", Language: pokeapi.NamedResource{Name: "de"}},
			{Name: "Charmander", Language: pokeapi.NamedResource{Name: "en"}},
		},
	}
}

func newCharmanderCatalog() *fakeCatalog {
	return &fakeCatalog{
		pokemon: map[string]*pokeapi.PokemonData{"charmander": charmanderData()},
		species: map[string]*pokeapi.SpeciesData{"charmander": charmanderSpecies()},
		moves: map[string]*pokeapi.MoveData{
			"scratch": {
				Name:  "scratch",
				Power: intPtr(40),
				Type:  pokeapi.NamedResource{Name: "normal"},
				Names: []pokeapi.LocalizedName{
					{Name: "Scratch", Language: pokeapi.NamedResource{Name: "en"}},
				},
			},
			"growl": {
				Name:  "growl",
				Power: intPtr(0),
				Type:  pokeapi.NamedResource{Name: "normal"},
			},
		},
	}
}

// -------- tests --------

func TestPokemonService_GetByName(t *testing.T) {
	t.Parallel()

	svc := NewPokemonService(newCharmanderCatalog())

	record, err := svc.GetByName(context.Background(), "charmander")
	if err != nil {
		t.Fatalf("GetByName error: %v", err)
	}

	if record.ID != 4 {
		t.Fatalf("id: got %d want 4", record.ID)
	}
	if record.Name != "Charmander" {
		t.Fatalf("name should be English display name: got %q", record.Name)
	}
	if record.Description != "Obviously prefers hot places." {
		t.Fatalf("description should collapse newlines: got %q", record.Description)
	}

	if len(record.Types) != 1 || record.Types[0].Name != "FIRE" {
		t.Fatalf("types should be uppercased: %+v", record.Types)
	}
	if record.Types[0].Color != "#AAAAAA" {
		t.Fatalf("type color should be the placeholder: %q", record.Types[0].Color)
	}

	if record.Stats.HP != 39 || record.Stats.SpecialAttack != 60 || record.Stats.SpecialDefense != 50 {
		t.Fatalf("stats mismatch: %+v", record.Stats)
	}

	if len(record.Moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(record.Moves))
	}
	if record.Moves[0].Name != "Scratch" {
		t.Fatalf("move name should prefer English: got %q", record.Moves[0].Name)
	}
	if record.Moves[0].Power == nil || *record.Moves[0].Power != 40 {
		t.Fatalf("scratch power: %+v", record.Moves[0].Power)
	}
	if record.Moves[1].Name != "growl" {
		t.Fatalf("move name should fall back to raw: got %q", record.Moves[1].Name)
	}
	if record.Moves[1].Power != nil {
		t.Fatalf("zero power should be absent, got %d", *record.Moves[1].Power)
	}

	if record.Sprites.FrontDefault != "https://sprites/front.png" {
		t.Fatalf("front sprite: %q", record.Sprites.FrontDefault)
	}
	if record.Sprites.BackDefault != "" || record.Sprites.FrontShiny != "" {
		t.Fatalf("missing sprites should be empty strings: %+v", record.Sprites)
	}
}

func TestPokemonService_GetByName_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewPokemonService(newCharmanderCatalog())

	_, err := svc.GetByName(context.Background(), "missingno")
	if err == nil {
		t.Fatal("expected NotFound, got nil")
	}
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.HTTPStatus != 404 {
		t.Fatalf("expected 404 DomainError, got %v", err)
	}
}

func TestPokemonService_MoveListTruncatedToTen(t *testing.T) {
	t.Parallel()

	catalog := newCharmanderCatalog()
	data := catalog.pokemon["charmander"]
	data.Moves = nil
	for i := 0; i < 15; i++ {
		name := fmt.Sprintf("move-%d", i)
		data.Moves = append(data.Moves, pokeapi.MoveSlot{Move: pokeapi.NamedResource{Name: name}})
		catalog.moves[name] = &pokeapi.MoveData{Name: name, Type: pokeapi.NamedResource{Name: "normal"}}
	}

	record, err := NewPokemonService(catalog).GetByName(context.Background(), "charmander")
	if err != nil {
		t.Fatalf("GetByName error: %v", err)
	}
	if len(record.Moves) != 10 {
		t.Fatalf("expected 10 moves, got %d", len(record.Moves))
	}
}

func TestPokemonService_FanOutBranchFailureFailsWhole(t *testing.T) {
	t.Parallel()

	catalog := newCharmanderCatalog()
	catalog.moveErr = errors.New("upstream down")

	if _, err := NewPokemonService(catalog).GetByName(context.Background(), "charmander"); err == nil {
		t.Fatal("expected failure when a move branch fails")
	}
}

func TestPokemonService_ListPage(t *testing.T) {
	t.Parallel()

	catalog := newCharmanderCatalog()
	catalog.pokemon["bulbasaur"] = &pokeapi.PokemonData{ID: 1, Name: "bulbasaur"}
	catalog.species["bulbasaur"] = &pokeapi.SpeciesData{}
	catalog.page = &pokeapi.Page{Results: []pokeapi.NamedResource{
		{Name: "bulbasaur"},
		{Name: "charmander"},
	}}

	records, err := NewPokemonService(catalog).ListPage(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("ListPage error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// catalog order preserved despite concurrent resolution
	if records[0].ID != 1 || records[1].ID != 4 {
		t.Fatalf("order not preserved: %d, %d", records[0].ID, records[1].ID)
	}
	// species with no English name falls back to the raw internal name
	if records[0].Name != "bulbasaur" {
		t.Fatalf("fallback name: got %q", records[0].Name)
	}
}

func TestPokemonService_ListPage_ResolutionFailureFailsWhole(t *testing.T) {
	t.Parallel()

	catalog := newCharmanderCatalog()
	catalog.page = &pokeapi.Page{Results: []pokeapi.NamedResource{
		{Name: "charmander"},
		{Name: "missingno"},
	}}

	if _, err := NewPokemonService(catalog).ListPage(context.Background(), 2, 0); err == nil {
		t.Fatal("expected failure when one record cannot be resolved")
	}
}
