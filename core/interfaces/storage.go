// ABOUTME: Storage interfaces for the durable, bounded lists kept by the panel
// ABOUTME: Writes are read-modify-write without locking, the last writer wins

package interfaces

import (
	"context"

	"visual-summarizer-api/core/domain"
)

// SavedPointStore persists the saved points list
type SavedPointStore interface {
	// List returns saved points, newest first
	List(ctx context.Context) ([]domain.SavedPoint, error)

	// Toggle adds the point when absent or removes it when present.
	// It returns the membership after the write.
	Toggle(ctx context.Context, point domain.SavedPoint) (bool, error)

	// RemoveAt deletes the point at index
	RemoveAt(ctx context.Context, index int) ([]domain.SavedPoint, error)
}

// RecentSummaryStore persists the recent summaries list
type RecentSummaryStore interface {
	List(ctx context.Context) ([]domain.RecentSummary, error)
	Add(ctx context.Context, summary domain.RecentSummary) error
}
