package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travel/pkg/cache"
)

const keyPrefix = "session:"

// Store keeps profiles in the shared cache under their session id.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewStore(c cache.Cache, ttlMinutes int) *Store {
	return &Store{
		cache: c,
		ttl:   time.Duration(ttlMinutes) * time.Minute,
	}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (s *Store) Load(ctx context.Context, id string) (*Profile, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	raw, err := s.cache.Get(ctx, sessionKey(id))
	if errors.Is(err, cache.ErrMiss) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &p, nil
}

// Save writes the profile and restarts its TTL.
func (s *Store) Save(ctx context.Context, p *Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKey(p.ID), string(raw), s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.cache.Del(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
