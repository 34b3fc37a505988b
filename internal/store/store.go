// Package store provides an interface for store persistence operations.
package store

import (
	"context"

	"github.com/abgdnv/storehub/internal/domain"
)

// SortKey is a single ordering clause for FindAll. An empty Direction
// defaults to ascending.
type SortKey struct {
	Field     string
	Direction string
}

// StoreRepository is an interface for store persistence operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type StoreRepository interface {
	// FindByID retrieves a single store by its unique identifier.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	FindByID(ctx context.Context, id int64) (*domain.Store, error)

	// FindAll returns stores matching the exact-match filters, ordered by the
	// sort keys in the order given. Filter and sort fields are checked against
	// a fixed whitelist; any other field fails with ErrInvalidField before a
	// query executes.
	FindAll(ctx context.Context, filters map[string]any, sort []SortKey) ([]*domain.Store, error)

	// Save routes to create (no identity yet) or update (identity present) and
	// re-fetches the row afterwards, so the returned store reflects
	// storage-assigned values exactly.
	Save(ctx context.Context, s *domain.Store) (*domain.Store, error)

	// Delete removes a store by ID. Returns true iff a row was removed;
	// deleting a nonexistent ID returns false, not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// Exists probes for a store's existence without fetching the full entity.
	Exists(ctx context.Context, id int64) (bool, error)
}
