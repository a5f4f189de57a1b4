// Package revision tracks the last seen content hash of each entity so that
// callers can tell whether a new revision actually changed anything.
package revision

import (
	"context"
	"strings"
	"sync"

	"github.com/ppiankov/wbmodel/internal/cache"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/item"
	"github.com/ppiankov/wbmodel/internal/logger"
)

const namespace = "revision"

// Result describes the outcome of SaveIfChanged
type Result struct {
	ID           string `json:"id" yaml:"id"`
	Hash         string `json:"hash" yaml:"hash"`
	PreviousHash string `json:"previous_hash,omitempty" yaml:"previous_hash,omitempty"`
	Changed      bool   `json:"changed" yaml:"changed"`
}

// Store records content hashes in a cache. It is safe for concurrent use.
type Store struct {
	cache cache.Cache
	mu    sync.Mutex
}

// NewStore creates a store over c
func NewStore(c cache.Cache) *Store {
	return &Store{cache: c}
}

func key(id string) string {
	return cache.CacheKey(namespace, id)
}

func checkID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.InvalidKeyf("entity id must be a non-empty string")
	}
	return nil
}

// SaveIfChanged hashes it and stores the hash under id when it differs from
// the stored one. The first save of an id always counts as a change.
func (s *Store) SaveIfChanged(ctx context.Context, id string, it *item.Item) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := checkID(id); err != nil {
		return Result{}, err
	}
	if it == nil {
		return Result{}, errors.InvalidArgumentf("cannot save a nil item for %s", id)
	}

	res := Result{ID: id, Hash: it.Hash()}

	s.mu.Lock()
	defer s.mu.Unlock()

	if previous, ok := s.cache.Get(key(id)); ok {
		res.PreviousHash = string(previous)
	}
	if res.PreviousHash == res.Hash {
		logger.Named(namespace).Debugw("revision unchanged", "id", id, "hash", res.Hash)
		return res, nil
	}

	if err := s.cache.Set(key(id), []byte(res.Hash), cache.DefaultExpiration); err != nil {
		return Result{}, errors.Wrapf(err, "store revision hash for %s", id)
	}
	res.Changed = true
	logger.Named(namespace).Infow("revision changed", "id", id, "hash", res.Hash, "previous", res.PreviousHash)
	return res, nil
}

// LastHash returns the stored hash for id
func (s *Store) LastHash(id string) (string, error) {
	if err := checkID(id); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, ok := s.cache.Get(key(id))
	if !ok {
		return "", errors.NotFoundf("no revision recorded for %s", id)
	}
	return string(hash), nil
}

// Forget drops the stored hash for id; unknown ids are a no-op
func (s *Store) Forget(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Delete(key(id)); err != nil {
		return errors.Wrapf(err, "forget revision for %s", id)
	}
	return nil
}
