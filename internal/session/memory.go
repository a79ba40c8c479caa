package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"

	"pqrchat/backend/internal/intake"
)

// MemoryStore keeps sessions in-process. It is the default for single-node
// deployments where no Redis address is configured.
type MemoryStore struct {
	cache *bigcache.BigCache
}

// NewMemoryStore creates an in-memory session store whose entries expire
// after ttl.
func NewMemoryStore(ttl time.Duration) (*MemoryStore, error) {
	cache, err := bigcache.New(context.Background(), bigcache.DefaultConfig(ttl))
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &MemoryStore{cache: cache}, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*intake.Session, error) {
	data, err := s.cache.Get(id)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return intake.NewSession(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var st intake.Session
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &st, nil
}

func (s *MemoryStore) Put(_ context.Context, id string, st *intake.Session) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", id, err)
	}
	return s.cache.Set(id, data)
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	err := s.cache.Delete(id)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil
	}
	return err
}
