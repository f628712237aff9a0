package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/timekeep/attendance-system/internal/core/domain"
	"github.com/timekeep/attendance-system/internal/core/ports"
)

// SummaryService computes the current day's worked time and salary for one
// owner. Stateless: every call refetches the day's entries and rescans them.
type SummaryService struct {
	entries     ports.EntryRepository
	wagePerHour float64
	log         zerolog.Logger

	now func() time.Time // overridable in tests
}

func NewSummaryService(entries ports.EntryRepository, wagePerHour float64, log zerolog.Logger) *SummaryService {
	if wagePerHour <= 0 {
		wagePerHour = domain.DefaultWagePerHour
	}
	return &SummaryService{
		entries:     entries,
		wagePerHour: wagePerHour,
		log:         log,
		now:         time.Now,
	}
}

// ForToday fetches the owner's entries since midnight local time, ascending,
// and folds them through the adjacent-pair scan.
func (s *SummaryService) ForToday(ctx context.Context, ownerID string) (*domain.DaySummary, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	entries, err := s.entries.ListByOwnerSince(ctx, ownerID, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	summary := domain.Summarize(entries, s.wagePerHour)

	s.log.Debug().
		Str("owner_id", ownerID).
		Int("entries", len(entries)).
		Int64("total_ms", summary.TotalMilliseconds).
		Msg("day summary computed")

	return &summary, nil
}
