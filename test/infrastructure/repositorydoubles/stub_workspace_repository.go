//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cratesup/internal/domain/repositories"
)

// StubWorkspaceRepository implements repositories.WorkspaceRepository with a fixed answer.
type StubWorkspaceRepository struct {
	Dirty        bool
	Err          error
	CheckedPaths []string
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) HasUncommittedChanges(path string) (bool, error) {
	s.CheckedPaths = append(s.CheckedPaths, path)
	return s.Dirty, s.Err
}
