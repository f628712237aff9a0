package ports

import "context"

// LocationService manages the registry of valid location codes.
type LocationService interface {
	// Add registers a new code. Idempotent.
	Add(ctx context.Context, code string) error

	// IsValid reports whether a code is currently registered.
	IsValid(ctx context.Context, code string) (bool, error)

	// EncodeQR renders a registered code as a self-contained PNG data URI.
	// Fails with domain.ErrUnknownLocation for unregistered codes.
	EncodeQR(ctx context.Context, code string) (string, error)
}
