// Package ristretto adapts dgraph-io/ristretto as a slotcache store.
//
// Ristretto is in-memory only and admission-controlled: a write the cache
// declines to admit is reported as an error here, because a store under a
// write-through cache must not drop writes silently. Use it for tests or
// ephemeral slots, not for durability.
package ristretto

import (
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"
)

var ErrWriteRejected = errors.New("ristretto store: write rejected")

type Store struct {
	c *rc.Cache
}

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Store, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto store: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Read(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// drop unexpected entry shape
		s.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (s *Store) Write(_ context.Context, key string, value []byte) error {
	ok := s.c.Set(key, value, int64(len(value)))
	// admission is buffered; flush so a following Read observes the write
	s.c.Wait()
	if !ok {
		return ErrWriteRejected
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.c.Del(key)
	s.c.Wait()
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.c.Close()
	return nil
}
