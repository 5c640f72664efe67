package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/spec-kit/pokebox/internal/domain"
	"github.com/spec-kit/pokebox/internal/events"
	"github.com/spec-kit/pokebox/internal/repository"
	apperrors "github.com/spec-kit/pokebox/pkg/util"
)

// BoxService coordinates per-user box entry workflows.
type BoxService struct {
	repo       repository.BoxRepository
	dispatcher events.Dispatcher
}

// BoxDependencies bundles collaborators for the box service.
type BoxDependencies struct {
	BoxRepo    repository.BoxRepository
	Dispatcher events.Dispatcher
}

// NewBoxService constructs the service.
func NewBoxService(deps BoxDependencies) *BoxService {
	return &BoxService{repo: deps.BoxRepo, dispatcher: deps.Dispatcher}
}

// List returns every entry id owned by the user. Order is unspecified.
func (s *BoxService) List(ctx context.Context, user string) ([]string, error) {
	ids, err := s.repo.ListIDs(ctx, user)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Create validates the payload, assigns a fresh id and persists the entry.
func (s *BoxService) Create(ctx context.Context, user string, input BoxEntryCreateInput) (*domain.BoxEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.BoxEntry{
		ID:        uuid.NewString(),
		CreatedAt: input.CreatedAt,
		Level:     input.Level,
		Location:  input.Location,
		Notes:     input.Notes,
		PokemonID: input.PokemonID,
	}

	if err := s.repo.Save(ctx, user, entry); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{Type: events.EventEntryCreated, User: user, EntryID: entry.ID})
	return entry, nil
}

// Get returns one entry under the user's namespace.
func (s *BoxService) Get(ctx context.Context, user, id string) (*domain.BoxEntry, error) {
	entry, err := s.repo.Get(ctx, user, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, apperrors.NewNotFound("Box entry")
		}
		return nil, err
	}
	return entry, nil
}

// Update replaces only the supplied fields of an existing entry. The existence
// check runs before payload validation so a missing entry reports NOT_FOUND
// even when the payload is also invalid.
func (s *BoxService) Update(ctx context.Context, user, id string, input BoxEntryUpdateInput) (*domain.BoxEntry, error) {
	existing, err := s.Get(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.CreatedAt != nil {
		existing.CreatedAt = *input.CreatedAt
	}
	if input.Level != nil {
		existing.Level = *input.Level
	}
	if input.Location != nil {
		existing.Location = *input.Location
	}
	if input.Notes != nil {
		existing.Notes = input.Notes
	}
	if input.PokemonID != nil {
		existing.PokemonID = *input.PokemonID
	}

	if err := s.repo.Save(ctx, user, existing); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{Type: events.EventEntryUpdated, User: user, EntryID: id})
	return existing, nil
}

// Delete removes one entry.
func (s *BoxService) Delete(ctx context.Context, user, id string) error {
	if err := s.repo.Delete(ctx, user, id); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return apperrors.NewNotFound("Box entry")
		}
		return err
	}

	s.publish(ctx, events.Event{Type: events.EventEntryDeleted, User: user, EntryID: id})
	return nil
}

// Clear removes every entry owned by the user. An empty box is a vacuous
// success.
func (s *BoxService) Clear(ctx context.Context, user string) error {
	if err := s.repo.DeleteAll(ctx, user); err != nil {
		return err
	}

	s.publish(ctx, events.Event{Type: events.EventBoxCleared, User: user})
	return nil
}

func (s *BoxService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
