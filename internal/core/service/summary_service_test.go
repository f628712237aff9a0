package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/timekeep/attendance-system/internal/core/domain"
)

func seededEntryRepo(ownerID string, entries ...domain.Entry) *stubEntryRepo {
	repo := &stubEntryRepo{}
	for _, e := range entries {
		e.OwnerID = ownerID
		repo.entries = append(repo.entries, e)
	}
	return repo
}

func at(t time.Time, kind domain.EntryKind) domain.Entry {
	return domain.Entry{Kind: kind, Time: t, LocationCode: "QUAN01"}
}

func TestSummaryService_ForToday_MatchedPair(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(2 * time.Hour)

	repo := seededEntryRepo("u1", at(checkIn, domain.KindCheckIn), at(checkOut, domain.KindCheckOut))
	svc := NewSummaryService(repo, 25000, zerolog.Nop())
	svc.now = func() time.Time { return now }

	sum, err := svc.ForToday(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalHours != 2 {
		t.Errorf("expected 2 hours, got %v", sum.TotalHours)
	}
	if sum.TotalSalary != 50000 {
		t.Errorf("expected salary 50000, got %v", sum.TotalSalary)
	}
}

func TestSummaryService_ForToday_WindowStartsAtLocalMidnight(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, loc)

	repo := seededEntryRepo("u1")
	svc := NewSummaryService(repo, 0, zerolog.Nop())
	svc.now = func() time.Time { return now }

	if _, err := svc.ForToday(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	if !repo.lastSince.Equal(want) {
		t.Fatalf("expected cutoff %v, got %v", want, repo.lastSince)
	}
}

func TestSummaryService_ForToday_YesterdayExcluded(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	yesterdayIn := time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)
	yesterdayOut := yesterdayIn.Add(8 * time.Hour)
	todayIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	todayOut := todayIn.Add(time.Hour)

	repo := seededEntryRepo("u1",
		at(yesterdayIn, domain.KindCheckIn),
		at(yesterdayOut, domain.KindCheckOut),
		at(todayIn, domain.KindCheckIn),
		at(todayOut, domain.KindCheckOut),
	)
	svc := NewSummaryService(repo, 25000, zerolog.Nop())
	svc.now = func() time.Time { return now }

	sum, err := svc.ForToday(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalHours != 1 {
		t.Errorf("expected only today's hour, got %v", sum.TotalHours)
	}
}

func TestSummaryService_ForToday_NoEntriesYieldsZeros(t *testing.T) {
	repo := seededEntryRepo("u1")
	svc := NewSummaryService(repo, 25000, zerolog.Nop())

	sum, err := svc.ForToday(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalMilliseconds != 0 || sum.TotalHours != 0 || sum.TotalSalary != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}

func TestSummaryService_DefaultsWageWhenUnset(t *testing.T) {
	repo := seededEntryRepo("u1")
	svc := NewSummaryService(repo, 0, zerolog.Nop())

	if svc.wagePerHour != domain.DefaultWagePerHour {
		t.Fatalf("expected default wage %v, got %v", float64(domain.DefaultWagePerHour), svc.wagePerHour)
	}
}
