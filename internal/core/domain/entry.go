package domain

import (
	"errors"
	"time"
)

// EntryKind distinguishes the two attendance event types.
type EntryKind string

const (
	KindCheckIn  EntryKind = "check-in"
	KindCheckOut EntryKind = "check-out"
)

var ErrInvalidLocation = errors.New("location code not registered")
var ErrUnknownLocation = errors.New("location code not found")

// Entry is a single immutable check-in or check-out record. The location
// code must belong to the registry at submission time; entries are never
// updated or deleted once stored.
type Entry struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Kind         EntryKind `json:"kind"`
	Time         time.Time `json:"time"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	LocationCode string    `json:"location_code"`
}
