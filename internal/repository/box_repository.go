package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/pokebox/internal/domain"
)

// ErrEntryNotFound reports a missing entry under the caller's namespace.
var ErrEntryNotFound = errors.New("box entry not found")

// boxKeyTag namespaces box entries within a user's keyspace.
const boxKeyTag = "pokedex"

// EntryKey composes the storage key for an entry. The user prefix is the sole
// tenancy-isolation mechanism: entries are only ever reachable through it.
func EntryKey(user, id string) string {
	return fmt.Sprintf("%s:%s:%s", user, boxKeyTag, id)
}

// EntryPattern matches every entry key owned by the user.
func EntryPattern(user string) string {
	return fmt.Sprintf("%s:%s:*", user, boxKeyTag)
}

// IDFromKey extracts the entry id from a storage key.
func IDFromKey(key string) string {
	idx := strings.LastIndex(key, ":")
	if idx < 0 || idx == len(key)-1 {
		return ""
	}
	return key[idx+1:]
}

// BoxRepository encapsulates per-user box entry persistence.
type BoxRepository interface {
	ListIDs(ctx context.Context, user string) ([]string, error)
	Get(ctx context.Context, user, id string) (*domain.BoxEntry, error)
	Save(ctx context.Context, user string, entry *domain.BoxEntry) error
	Delete(ctx context.Context, user, id string) error
	DeleteAll(ctx context.Context, user string) error
}

type boxRepository struct {
	client *redis.Client
}

// NewBoxRepository instantiates repository.
func NewBoxRepository(client *redis.Client) BoxRepository {
	return &boxRepository{client: client}
}

func (r *boxRepository) ListIDs(ctx context.Context, user string) ([]string, error) {
	keys, err := r.scanKeys(ctx, user)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		if id := IDFromKey(key); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *boxRepository) Get(ctx context.Context, user, id string) (*domain.BoxEntry, error) {
	raw, err := r.client.Get(ctx, EntryKey(user, id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	var entry domain.BoxEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("decode box entry %s: %w", id, err)
	}
	return &entry, nil
}

func (r *boxRepository) Save(ctx context.Context, user string, entry *domain.BoxEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode box entry %s: %w", entry.ID, err)
	}
	return r.client.Set(ctx, EntryKey(user, entry.ID), raw, 0).Err()
}

func (r *boxRepository) Delete(ctx context.Context, user, id string) error {
	deleted, err := r.client.Del(ctx, EntryKey(user, id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteAll removes every entry owned by the user. The scan and the delete are
// not one atomic step; entries created in between may survive.
func (r *boxRepository) DeleteAll(ctx context.Context, user string) error {
	keys, err := r.scanKeys(ctx, user)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *boxRepository) scanKeys(ctx context.Context, user string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, EntryPattern(user), 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
