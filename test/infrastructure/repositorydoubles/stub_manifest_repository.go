//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cratesup/internal/domain/entities"
	"github.com/rios0rios0/cratesup/internal/domain/repositories"
)

// SpyManifestRepository implements repositories.ManifestRepository as a configurable spy.
type SpyManifestRepository struct {
	// --- ReadDependencies ---
	Dependencies []entities.DependencySpec
	ReadErr      error
	ReadPaths    []string

	// --- ApplyUpdates ---
	ApplyErr      error
	AppliedPaths  []string
	AppliedUpdate [][]entities.ResolvedDependency
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (s *SpyManifestRepository) ReadDependencies(path string) ([]entities.DependencySpec, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return s.Dependencies, nil
}

func (s *SpyManifestRepository) ApplyUpdates(path string, resolved []entities.ResolvedDependency) error {
	s.AppliedPaths = append(s.AppliedPaths, path)
	s.AppliedUpdate = append(s.AppliedUpdate, resolved)
	return s.ApplyErr
}
