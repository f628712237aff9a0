package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/timekeep/attendance-system/internal/core/domain"
	"github.com/timekeep/attendance-system/internal/core/ports"
)

type stubEntryRepo struct {
	entries   []domain.Entry
	insertErr error
	lastSince time.Time
}

func (r *stubEntryRepo) Insert(_ context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	stored := *entry
	stored.ID = "entry_1"
	r.entries = append(r.entries, stored)
	return &stored, nil
}

func (r *stubEntryRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Entry, error) {
	var out []domain.Entry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].OwnerID == ownerID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *stubEntryRepo) ListByOwnerSince(_ context.Context, ownerID string, since time.Time) ([]domain.Entry, error) {
	r.lastSince = since
	var out []domain.Entry
	for _, e := range r.entries {
		if e.OwnerID == ownerID && !e.Time.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func validInput() ports.EntryInput {
	return ports.EntryInput{
		OwnerID:      "u1",
		Kind:         "check-in",
		Time:         time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Latitude:     10.762622,
		Longitude:    106.660172,
		LocationCode: "QUAN01",
	}
}

func TestAttendanceService_Record_Success(t *testing.T) {
	repo := &stubEntryRepo{}
	locations := newStubLocationRepo("QUAN01")
	svc := NewAttendanceService(repo, NewLocationService(locations, nil, zerolog.Nop()), zerolog.Nop())

	entry, err := svc.Record(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID == "" {
		t.Errorf("expected stored entry to carry an ID")
	}
	if entry.Kind != domain.KindCheckIn {
		t.Errorf("unexpected kind: %s", entry.Kind)
	}
	if len(repo.entries) != 1 {
		t.Errorf("expected exactly one stored entry, got %d", len(repo.entries))
	}
}

func TestAttendanceService_Record_InvalidLocationRejectedBeforeWrite(t *testing.T) {
	repo := &stubEntryRepo{}
	locations := newStubLocationRepo("QUAN01")
	svc := NewAttendanceService(repo, NewLocationService(locations, nil, zerolog.Nop()), zerolog.Nop())

	in := validInput()
	in.LocationCode = "UNKNOWN"

	_, err := svc.Record(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidLocation) {
		t.Fatalf("expected ErrInvalidLocation, got %v", err)
	}
	if len(repo.entries) != 0 {
		t.Fatalf("nothing may be persisted when the location is invalid")
	}
}

func TestAttendanceService_Record_InsertFailure(t *testing.T) {
	repo := &stubEntryRepo{insertErr: errors.New("mongo unavailable")}
	locations := newStubLocationRepo("QUAN01")
	svc := NewAttendanceService(repo, NewLocationService(locations, nil, zerolog.Nop()), zerolog.Nop())

	if _, err := svc.Record(context.Background(), validInput()); err == nil {
		t.Fatalf("expected insert failure to surface")
	}
}

func TestAttendanceService_History_NewestFirst(t *testing.T) {
	repo := &stubEntryRepo{}
	locations := newStubLocationRepo("QUAN01")
	svc := NewAttendanceService(repo, NewLocationService(locations, nil, zerolog.Nop()), zerolog.Nop())

	first := validInput()
	second := validInput()
	second.Kind = "check-out"
	second.Time = first.Time.Add(8 * time.Hour)

	_, _ = svc.Record(context.Background(), first)
	_, _ = svc.Record(context.Background(), second)

	entries, err := svc.History(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind != domain.KindCheckOut {
		t.Errorf("expected newest entry first, got %s", entries[0].Kind)
	}
}
