package ports

import (
	"context"

	"github.com/timekeep/attendance-system/internal/core/domain"
)

// SummaryService computes worked time and salary for one owner over the
// current day. The day window starts at 00:00:00 server-local time; the
// result is recomputed from stored entries on every call.
type SummaryService interface {
	ForToday(ctx context.Context, ownerID string) (*domain.DaySummary, error)
}
