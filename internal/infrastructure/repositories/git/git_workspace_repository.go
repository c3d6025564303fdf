package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cratesup/internal/domain/repositories"
)

// WorkspaceRepository inspects the Git working tree that contains a manifest.
type WorkspaceRepository struct{}

// NewWorkspaceRepository creates a new Git workspace repository.
func NewWorkspaceRepository() repositories.WorkspaceRepository {
	return &WorkspaceRepository{}
}

// HasUncommittedChanges reports whether the file at path has staged or
// unstaged modifications. Files outside a Git repository are never dirty.
func (it *WorkspaceRepository) HasUncommittedChanges(path string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(absPath), &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		logger.Debugf("%s is not inside a Git repository", absPath)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}

	root, err := filepath.EvalSymlinks(worktree.Filesystem.Root())
	if err != nil {
		return false, fmt.Errorf("failed to resolve worktree root: %w", err)
	}
	resolvedPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %q: %w", absPath, err)
	}

	relPath, err := filepath.Rel(root, resolvedPath)
	if err != nil {
		return false, fmt.Errorf("failed to locate %q in worktree: %w", absPath, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree status: %w", err)
	}

	fileStatus, tracked := status[filepath.ToSlash(relPath)]
	if !tracked {
		return false, nil
	}
	return fileStatus.Staging != git.Unmodified || fileStatus.Worktree != git.Unmodified, nil
}
