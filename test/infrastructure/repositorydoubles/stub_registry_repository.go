//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
	"github.com/rios0rios0/cratesup/internal/domain/repositories"
)

// StubRegistryRepository implements repositories.RegistryRepository with canned snapshots.
type StubRegistryRepository struct {
	RegistryName string

	// --- FetchSnapshot ---
	Snapshots map[string]entities.RegistrySnapshot // crate -> snapshot
	Errors    map[string]error                     // crate -> error
	// spy: crates requested, in order
	FetchedCrates []string
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

// NewStubRegistryRepository creates an empty stub for the given registry name.
func NewStubRegistryRepository(name string) *StubRegistryRepository {
	return &StubRegistryRepository{
		RegistryName: name,
		Snapshots:    make(map[string]entities.RegistrySnapshot),
		Errors:       make(map[string]error),
	}
}

// WithSnapshot registers the versions reported for a crate.
func (s *StubRegistryRepository) WithSnapshot(crate, maxVersion string, maxStable *string) *StubRegistryRepository {
	s.Snapshots[crate] = entities.RegistrySnapshot{MaxVersion: maxVersion, MaxStableVersion: maxStable}
	return s
}

// WithError makes lookups of a crate fail.
func (s *StubRegistryRepository) WithError(crate string, err error) *StubRegistryRepository {
	s.Errors[crate] = err
	return s
}

func (s *StubRegistryRepository) Name() string { return s.RegistryName }

func (s *StubRegistryRepository) FetchSnapshot(_ context.Context, crate string) (entities.RegistrySnapshot, error) {
	s.FetchedCrates = append(s.FetchedCrates, crate)
	if err, ok := s.Errors[crate]; ok {
		return entities.RegistrySnapshot{}, err
	}
	if snapshot, ok := s.Snapshots[crate]; ok {
		return snapshot, nil
	}
	return entities.RegistrySnapshot{}, fmt.Errorf("%w: %w: %s",
		entities.ErrRegistryLookupFailed, entities.ErrCrateNotFound, crate)
}
