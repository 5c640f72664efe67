package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/spec-kit/pokebox/internal/domain"
	"github.com/spec-kit/pokebox/internal/pokeapi"
	apperrors "github.com/spec-kit/pokebox/pkg/util"
)

// typePlaceholderColor is assigned to every type; no real type-to-color
// mapping table exists upstream.
const typePlaceholderColor = "#AAAAAA"

// maxMoves caps how many raw move refs are resolved per record.
const maxMoves = 10

// CatalogSource abstracts the upstream catalog for the service.
type CatalogSource interface {
	GetPokemon(ctx context.Context, name string) (*pokeapi.PokemonData, error)
	GetSpecies(ctx context.Context, name string) (*pokeapi.SpeciesData, error)
	GetMove(ctx context.Context, name string) (*pokeapi.MoveData, error)
	ListPokemon(ctx context.Context, limit, offset int) (*pokeapi.Page, error)
}

// PokemonService reshapes raw catalog records into the simplified schema.
// Nothing is cached; every request re-fetches from the source.
type PokemonService struct {
	catalog CatalogSource
}

// NewPokemonService constructs the service.
func NewPokemonService(catalog CatalogSource) *PokemonService {
	return &PokemonService{catalog: catalog}
}

// GetByName assembles one full record, fetching the primary and species
// resources concurrently and then resolving the first ten moves in parallel.
// Any failed branch fails the whole request.
func (s *PokemonService) GetByName(ctx context.Context, name string) (*domain.Pokemon, error) {
	var (
		wg          sync.WaitGroup
		pokemonData *pokeapi.PokemonData
		speciesData *pokeapi.SpeciesData
		pokemonErr  error
		speciesErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		pokemonData, pokemonErr = s.catalog.GetPokemon(ctx, name)
	}()
	go func() {
		defer wg.Done()
		speciesData, speciesErr = s.catalog.GetSpecies(ctx, name)
	}()
	wg.Wait()

	if err := firstError(pokemonErr, speciesErr); err != nil {
		return nil, translateCatalogErr(err)
	}

	moves, err := s.resolveMoves(ctx, pokemonData)
	if err != nil {
		return nil, translateCatalogErr(err)
	}

	return assemblePokemon(pokemonData, speciesData, moves), nil
}

// ListPage resolves one pagination window into full records, preserving
// catalog order.
func (s *PokemonService) ListPage(ctx context.Context, limit, offset int) ([]domain.Pokemon, error) {
	page, err := s.catalog.ListPokemon(ctx, limit, offset)
	if err != nil {
		return nil, translateCatalogErr(err)
	}

	records := make([]domain.Pokemon, len(page.Results))
	errs := make([]error, len(page.Results))

	var wg sync.WaitGroup
	for i, ref := range page.Results {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			record, err := s.GetByName(ctx, name)
			if err != nil {
				errs[i] = err
				return
			}
			records[i] = *record
		}(i, ref.Name)
	}
	wg.Wait()

	if err := firstError(errs...); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *PokemonService) resolveMoves(ctx context.Context, data *pokeapi.PokemonData) ([]domain.PokemonMove, error) {
	refs := data.Moves
	if len(refs) > maxMoves {
		refs = refs[:maxMoves]
	}

	details := make([]*pokeapi.MoveData, len(refs))
	errs := make([]error, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			details[i], errs[i] = s.catalog.GetMove(ctx, name)
		}(i, ref.Move.Name)
	}
	wg.Wait()

	if err := firstError(errs...); err != nil {
		return nil, err
	}

	moves := make([]domain.PokemonMove, 0, len(details))
	for _, m := range details {
		moves = append(moves, mapMove(m))
	}
	return moves, nil
}

func assemblePokemon(data *pokeapi.PokemonData, species *pokeapi.SpeciesData, moves []domain.PokemonMove) *domain.Pokemon {
	types := make([]domain.PokemonType, 0, len(data.Types))
	for _, t := range data.Types {
		types = append(types, mapType(t.Type.Name))
	}

	statsMap := map[string]int{}
	for _, s := range data.Stats {
		statsMap[s.Stat.Name] = s.BaseStat
	}

	return &domain.Pokemon{
		ID:          data.ID,
		Name:        localizedName(species.Names, data.Name),
		Description: englishDescription(species.FlavorTextEntries),
		Types:       types,
		Moves:       moves,
		Sprites: domain.PokemonSprites{
			FrontDefault: spriteURL(data.Sprites.FrontDefault),
			BackDefault:  spriteURL(data.Sprites.BackDefault),
			FrontShiny:   spriteURL(data.Sprites.FrontShiny),
			BackShiny:    spriteURL(data.Sprites.BackShiny),
		},
		Stats: domain.PokemonStats{
			HP:             statsMap["hp"],
			Speed:          statsMap["speed"],
			Attack:         statsMap["attack"],
			Defense:        statsMap["defense"],
			SpecialAttack:  statsMap["special-attack"],
			SpecialDefense: statsMap["special-defense"],
		},
	}
}

func mapType(rawName string) domain.PokemonType {
	return domain.PokemonType{
		Name:  strings.ToUpper(rawName),
		Color: typePlaceholderColor,
	}
}

func mapMove(m *pokeapi.MoveData) domain.PokemonMove {
	move := domain.PokemonMove{
		Name: localizedName(m.Names, m.Name),
		Type: mapType(m.Type.Name),
	}
	// upstream reports 0/null power for status moves; treat both as absent
	if m.Power != nil && *m.Power > 0 {
		move.Power = m.Power
	}
	return move
}

func localizedName(names []pokeapi.LocalizedName, fallback string) string {
	for _, n := range names {
		if n.Language.Name == "en" {
			return n.Name
		}
	}
	return fallback
}

func englishDescription(entries []pokeapi.FlavorText) string {
	for _, e := range entries {
		if e.Language.Name == "en" {
			return strings.ReplaceAll(e.FlavorText, "\n", " ")
		}
	}
	return ""
}

func spriteURL(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func translateCatalogErr(err error) error {
	if errors.Is(err, pokeapi.ErrNotFound) {
		return apperrors.NewNotFound("Pokemon")
	}
	return err
}
