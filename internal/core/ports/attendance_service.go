package ports

import (
	"context"
	"time"

	"github.com/timekeep/attendance-system/internal/core/domain"
)

// EntryInput is the DTO passed from the transport layer to AttendanceService.
type EntryInput struct {
	OwnerID      string
	Kind         string
	Time         time.Time
	Latitude     float64
	Longitude    float64
	LocationCode string
}

// AttendanceService records entries and serves an owner's history.
type AttendanceService interface {
	// Record validates the location code and persists the entry. Nothing is
	// written when the code is not registered.
	Record(ctx context.Context, in EntryInput) (*domain.Entry, error)

	// History returns all of an owner's entries, newest first.
	History(ctx context.Context, ownerID string) ([]domain.Entry, error)
}
