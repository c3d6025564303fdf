package repositories

import (
	"context"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
)

// RegistryRepository abstracts a crate registry (crates.io or an alternative
// registry exposing the same web API).
type RegistryRepository interface {
	// Name returns the registry identifier (e.g. "crates-io").
	Name() string

	// FetchSnapshot returns the newest overall and newest stable versions of a
	// crate. It performs a single request and never retries.
	FetchSnapshot(ctx context.Context, crate string) (entities.RegistrySnapshot, error)
}
