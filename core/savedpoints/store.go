// ABOUTME: Key-value backed stores for saved points and recent summaries
// ABOUTME: Lists are JSON arrays, newest first, rewritten whole on every change

package savedpoints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"visual-summarizer-api/core/domain"
	apperrors "visual-summarizer-api/core/errors"
	"visual-summarizer-api/core/interfaces"
)

const (
	// SavedPointsKey holds the saved points list
	SavedPointsKey = "savedPoints"

	// RecentSummariesKey holds the recent summaries list
	RecentSummariesKey = "recentSummaries"
)

// Store implements SavedPointStore and RecentSummaryStore over a key-value cache
type Store struct {
	kv interfaces.Cache
}

// NewStore creates a store over kv
func NewStore(kv interfaces.Cache) *Store {
	return &Store{kv: kv}
}

// List returns saved points, newest first
func (s *Store) List(ctx context.Context) ([]domain.SavedPoint, error) {
	var points []domain.SavedPoint
	if err := s.load(ctx, SavedPointsKey, &points); err != nil {
		return nil, err
	}
	if points == nil {
		points = []domain.SavedPoint{}
	}
	return points, nil
}

// Toggle removes every saved point with the same text, or prepends point when none exists.
// The list is capped at domain.MaxSavedPoints.
func (s *Store) Toggle(ctx context.Context, point domain.SavedPoint) (bool, error) {
	points, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	kept := points[:0]
	for _, p := range points {
		if p.Text != point.Text {
			kept = append(kept, p)
		}
	}

	saved := len(kept) == len(points)
	if saved {
		kept = append([]domain.SavedPoint{point}, kept...)
		if len(kept) > domain.MaxSavedPoints {
			kept = kept[:domain.MaxSavedPoints]
		}
	}

	if err := s.store(ctx, SavedPointsKey, kept); err != nil {
		return false, err
	}
	return saved, nil
}

// RemoveAt deletes the saved point at index and returns the remaining list
func (s *Store) RemoveAt(ctx context.Context, index int) ([]domain.SavedPoint, error) {
	points, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(points) {
		return nil, &apperrors.NotFoundError{Resource: "saved point", ID: fmt.Sprint(index)}
	}

	points = append(points[:index], points[index+1:]...)
	if err := s.store(ctx, SavedPointsKey, points); err != nil {
		return nil, err
	}
	return points, nil
}

// Recent returns the summaries store view of s
func (s *Store) Recent() *RecentStore {
	return &RecentStore{store: s}
}

// RecentStore implements RecentSummaryStore
type RecentStore struct {
	store *Store
}

// List returns recent summaries, newest first
func (r *RecentStore) List(ctx context.Context) ([]domain.RecentSummary, error) {
	var summaries []domain.RecentSummary
	if err := r.store.load(ctx, RecentSummariesKey, &summaries); err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []domain.RecentSummary{}
	}
	return summaries, nil
}

// Add prepends summary and keeps at most domain.MaxRecentSummaries entries
func (r *RecentStore) Add(ctx context.Context, summary domain.RecentSummary) error {
	summaries, err := r.List(ctx)
	if err != nil {
		return err
	}

	summaries = append([]domain.RecentSummary{summary}, summaries...)
	if len(summaries) > domain.MaxRecentSummaries {
		summaries = summaries[:domain.MaxRecentSummaries]
	}
	return r.store.store(ctx, RecentSummariesKey, summaries)
}

// load decodes key into v; a missing key leaves v untouched
func (s *Store) load(ctx context.Context, key string, v interface{}) error {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, apperrors.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return &apperrors.StorageError{Op: "get", Key: key, Err: err}
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &apperrors.StorageError{Op: "decode", Key: key, Err: err}
	}
	return nil
}

func (s *Store) store(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &apperrors.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := s.kv.Set(ctx, key, data, 0); err != nil {
		return &apperrors.StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}
