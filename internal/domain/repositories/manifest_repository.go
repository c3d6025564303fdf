package repositories

import (
	"github.com/rios0rios0/cratesup/internal/domain/entities"
)

// ManifestRepository reads and rewrites a package manifest on disk.
type ManifestRepository interface {
	// ReadDependencies returns the direct dependencies declared in the manifest,
	// in a stable order.
	ReadDependencies(path string) ([]entities.DependencySpec, error)

	// ApplyUpdates rewrites the version of every outdated dependency declared in
	// the manifest's dependencies section, leaving everything else untouched.
	ApplyUpdates(path string, resolved []entities.ResolvedDependency) error
}
