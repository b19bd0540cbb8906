// ABOUTME: In-process key-value store backed by sync.Map
// ABOUTME: Values are copied on the way in and out; TTL 0 keeps an entry until deleted

package memory

import (
	"context"
	"sync"
	"time"

	apperrors "visual-summarizer-api/core/errors"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Store implements the Cache interface in memory
type Store struct {
	entries sync.Map
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{}
}

// Get returns a copy of the value for key or errors.ErrKeyNotFound
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, ok := s.entries.Load(key)
	if !ok {
		return nil, apperrors.ErrKeyNotFound
	}

	e := v.(*entry)
	if e.expired(time.Now()) {
		s.entries.CompareAndDelete(key, e)
		go s.sweep()
		return nil, apperrors.ErrKeyNotFound
	}

	return append([]byte(nil), e.value...), nil
}

// Set stores a copy of value; ttl 0 never expires
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := &entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s.entries.Store(key, e)
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.entries.Delete(key)
	return nil
}

// Len returns the number of live entries
func (s *Store) Len() int {
	now := time.Now()
	n := 0
	s.entries.Range(func(_, v interface{}) bool {
		if !v.(*entry).expired(now) {
			n++
		}
		return true
	})
	return n
}

// sweep drops every expired entry
func (s *Store) sweep() {
	now := time.Now()
	s.entries.Range(func(k, v interface{}) bool {
		if v.(*entry).expired(now) {
			s.entries.CompareAndDelete(k, v)
		}
		return true
	})
}
