package ports

import "context"

// LocationRepository is the persistent set of valid location codes.
type LocationRepository interface {
	// Add registers a code. Idempotent: adding an existing code is not an error.
	Add(ctx context.Context, code string) error

	// Exists reports membership of a code in the registry.
	Exists(ctx context.Context, code string) (bool, error)
}
