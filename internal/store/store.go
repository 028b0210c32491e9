// Package store defines the datastore abstraction for happy-arz.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// ErrEmptyOwner is returned by bookmark operations without an owner.
var ErrEmptyOwner = errors.New("bookmark owner is required")

// Store defines all data access operations for happy-arz.
type Store interface {
	// Verified businesses
	GetVerifiedBusinesses(ctx context.Context) ([]domain.Business, error)
	// ReplaceVerifiedBusinesses swaps the whole verified set atomically. It
	// never merges with the previous set.
	ReplaceVerifiedBusinesses(ctx context.Context, businesses []domain.Business) error

	// Upload history (append-only)
	AppendUploadHistory(ctx context.Context, e *domain.UploadHistoryEntry) error
	ListUploadHistory(ctx context.Context, q *HistoryQuery) ([]domain.UploadHistoryEntry, error)
	GetUploadStats(ctx context.Context) (*domain.UploadStats, error)

	// Bookmarks
	ListBookmarkedIDs(ctx context.Context, owner string) ([]string, error)
	// ToggleBookmark flips the bookmark and returns the new state.
	ToggleBookmark(ctx context.Context, owner, businessID string) (bool, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
