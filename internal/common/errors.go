// Package common defines shared constants and sentinel errors used across
// TimeFlux components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Cache errors. A corrupt payload is treated as a cache miss by the
	// holiday service and never surfaced to the user.
	ErrCacheMiss           = errors.New("cache miss")
	ErrCachePayloadCorrupt = errors.New("cache payload corrupt")

	// Custom-event store errors. A corrupt persisted list is recovered
	// as an empty store.
	ErrStoreCorrupt = errors.New("event store corrupt")

	// Provider errors.
	ErrProviderUnavailable = errors.New("holiday provider unavailable")

	// Validation errors for user-supplied event data. The only error an
	// interactive caller is expected to see.
	ErrValidation = errors.New("validation error")
)
