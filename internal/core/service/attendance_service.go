package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/timekeep/attendance-system/internal/core/domain"
	"github.com/timekeep/attendance-system/internal/core/ports"
)

// LocationChecker is the slice of the location registry the attendance
// service needs for validation.
type LocationChecker interface {
	IsValid(ctx context.Context, code string) (bool, error)
}

type attendanceService struct {
	entries   ports.EntryRepository
	locations LocationChecker
	log       zerolog.Logger
}

// NewAttendanceService returns an AttendanceService implementation.
func NewAttendanceService(entries ports.EntryRepository, locations LocationChecker, log zerolog.Logger) ports.AttendanceService {
	return &attendanceService{
		entries:   entries,
		locations: locations,
		log:       log,
	}
}

// Record validates the location code against the registry, then persists the
// entry. The membership check runs before any write: an unregistered code
// leaves the store untouched.
func (s *attendanceService) Record(ctx context.Context, in ports.EntryInput) (*domain.Entry, error) {
	ok, err := s.locations.IsValid(ctx, in.LocationCode)
	if err != nil {
		return nil, fmt.Errorf("record entry: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidLocation
	}

	entry := &domain.Entry{
		OwnerID:      in.OwnerID,
		Kind:         domain.EntryKind(in.Kind),
		Time:         in.Time,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		LocationCode: in.LocationCode,
	}

	stored, err := s.entries.Insert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("record entry: %w", err)
	}

	s.log.Info().
		Str("owner_id", in.OwnerID).
		Str("kind", in.Kind).
		Str("location", in.LocationCode).
		Msg("entry recorded")

	return stored, nil
}

// History returns all entries for an owner, newest first.
func (s *attendanceService) History(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	entries, err := s.entries.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}
