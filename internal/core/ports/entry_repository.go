package ports

import (
	"context"
	"time"

	"github.com/timekeep/attendance-system/internal/core/domain"
)

// EntryRepository handles persistence of attendance entries.
type EntryRepository interface {
	// Insert stores a new entry and returns it with its generated ID.
	Insert(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)

	// ListByOwner returns all entries for an owner, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Entry, error)

	// ListByOwnerSince returns entries for an owner with time >= since,
	// oldest first. Used by the summary engine.
	ListByOwnerSince(ctx context.Context, ownerID string, since time.Time) ([]domain.Entry, error)
}
