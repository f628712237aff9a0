package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/timekeep/attendance-system/internal/core/domain"
	"github.com/timekeep/attendance-system/internal/core/ports"
)

const qrImageSize = 256

// ImageCache abstracts the rendered-QR cache (Redis). A miss is reported as
// an empty string, not an error.
type ImageCache interface {
	Get(ctx context.Context, code string) (string, error)
	Set(ctx context.Context, code, dataURI string) error
}

// LocationService manages the registry of valid location codes and renders
// QR images for them.
type LocationService struct {
	repo  ports.LocationRepository
	cache ImageCache
	log   zerolog.Logger
}

func NewLocationService(repo ports.LocationRepository, cache ImageCache, log zerolog.Logger) *LocationService {
	return &LocationService{repo: repo, cache: cache, log: log}
}

// Add registers a code. Adding an existing code is a no-op, so concurrent
// calls are safe without coordination.
func (s *LocationService) Add(ctx context.Context, code string) error {
	if err := s.repo.Add(ctx, code); err != nil {
		return fmt.Errorf("add location: %w", err)
	}
	s.log.Info().Str("code", code).Msg("location code registered")
	return nil
}

// IsValid reports whether a code is currently registered.
func (s *LocationService) IsValid(ctx context.Context, code string) (bool, error) {
	return s.repo.Exists(ctx, code)
}

// Seed registers the initial set of codes at startup. Idempotent across
// restarts.
func (s *LocationService) Seed(ctx context.Context, codes []string) error {
	for _, code := range codes {
		if err := s.repo.Add(ctx, code); err != nil {
			return fmt.Errorf("seed location %q: %w", code, err)
		}
	}
	return nil
}

// EncodeQR renders a registered code as a PNG data URI suitable for direct
// embedding in an <img> tag. Cache failures are non-fatal.
func (s *LocationService) EncodeQR(ctx context.Context, code string) (string, error) {
	ok, err := s.repo.Exists(ctx, code)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	if !ok {
		return "", domain.ErrUnknownLocation
	}

	if s.cache != nil {
		cached, cacheErr := s.cache.Get(ctx, code)
		if cacheErr != nil {
			s.log.Warn().Err(cacheErr).Str("code", code).Msg("qr cache lookup failed")
		} else if cached != "" {
			return cached, nil
		}
	}

	png, err := qrcode.Encode(code, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, code, dataURI); cacheErr != nil {
			s.log.Warn().Err(cacheErr).Str("code", code).Msg("failed to cache qr image")
		}
	}

	return dataURI, nil
}
