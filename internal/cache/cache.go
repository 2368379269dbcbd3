// Package cache memoises simulation output in Redis. The engine is
// deterministic, so a stored result for the same constants and parameters is
// interchangeable with a fresh run.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/playmatatu/ballflight/internal/flight"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ballflight:"

// Store is a Redis-backed result cache. A nil *Store, or one without a
// client, always misses and silently drops writes.
type Store struct {
	rdb  *redis.Client
	ttl  time.Duration
	salt string
}

// New creates a store. Results computed under different constants never
// share keys.
func New(rdb *redis.Client, ttl time.Duration, c flight.Constants) *Store {
	b, _ := json.Marshal(c)
	sum := sha256.Sum256(b)
	return &Store{rdb: rdb, ttl: ttl, salt: hex.EncodeToString(sum[:8])}
}

// Enabled reports whether lookups can hit.
func (s *Store) Enabled() bool {
	return s != nil && s.rdb != nil
}

// Key derives the cache key for one request kind and its parameters.
func (s *Store) Key(kind string, params any) (string, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	if s != nil {
		h.Write([]byte(s.salt))
	}
	h.Write([]byte{0})
	h.Write(b)
	return keyPrefix + kind + ":" + hex.EncodeToString(h.Sum(nil)), nil
}

// Get loads the value stored under key into dst. found is false on a miss.
func (s *Store) Get(ctx context.Context, key string, dst any) (found bool, err error) {
	if !s.Enabled() {
		return false, nil
	}
	data, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores v under key with the store's TTL.
func (s *Store) Set(ctx context.Context, key string, v any) error {
	if !s.Enabled() {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.SetEx(ctx, key, data, s.ttl).Err()
}
