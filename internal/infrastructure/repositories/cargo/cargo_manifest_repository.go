package cargo

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
	"github.com/rios0rios0/cratesup/internal/domain/repositories"
)

// cargoManifest is the subset of Cargo.toml the checker reads.
type cargoManifest struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

// ManifestRepository reads and updates Cargo manifests on the local filesystem.
type ManifestRepository struct{}

// NewManifestRepository creates a new Cargo manifest repository.
func NewManifestRepository() repositories.ManifestRepository {
	return &ManifestRepository{}
}

// ReadDependencies returns the direct dependencies of the manifest: the
// [dependencies] section first, then [dev-dependencies] and
// [build-dependencies], each sorted by manifest key.
func (it *ManifestRepository) ReadDependencies(path string) ([]entities.DependencySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrManifestRead, err)
	}

	var manifest cargoManifest
	if err = toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrManifestParse, err)
	}

	var specs []entities.DependencySpec
	specs = append(specs, extractDependencies(manifest.Dependencies, entities.KindNormal)...)
	specs = append(specs, extractDependencies(manifest.DevDependencies, entities.KindDev)...)
	specs = append(specs, extractDependencies(manifest.BuildDependencies, entities.KindBuild)...)

	logger.Debugf("Read %d dependencies from %s", len(specs), path)
	return specs, nil
}

// ApplyUpdates rewrites the version of every outdated entry of the
// [dependencies] section to its recommended version and writes the manifest
// back, leaving everything else byte-for-byte unchanged. Entries that are not
// declared there with a version string are skipped.
func (it *ManifestRepository) ApplyUpdates(path string, resolved []entities.ResolvedDependency) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrManifestRead, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrManifestRead, err)
	}

	var manifest cargoManifest
	if err = toml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrManifestParse, err)
	}

	doc, err := parseManifestDocument(data)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrManifestParse, err)
	}

	for _, dep := range resolved {
		if !dep.UpdateAvailable || dep.Kind == entities.KindDev || dep.Kind == entities.KindBuild {
			continue
		}

		if !doc.SetVersion(dep.ManifestKey(), dep.RecommendedVersion) {
			logger.Debugf("Crate %s has no version in [dependencies], skipping", dep.ManifestKey())
			continue
		}
		logger.Debugf("Bumping %s: %s -> %s", dep.ManifestKey(), dep.DeclaredRequirement, dep.RecommendedVersion)
	}

	if err = os.WriteFile(path, doc.Bytes(), info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrManifestWrite, err)
	}
	return nil
}

func extractDependencies(section map[string]any, kind entities.DependencyKind) []entities.DependencySpec {
	keys := make([]string, 0, len(section))
	for key := range section {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	specs := make([]entities.DependencySpec, 0, len(keys))
	for _, key := range keys {
		switch value := section[key].(type) {
		case string:
			specs = append(specs, entities.DependencySpec{
				Name:        key,
				Key:         key,
				Requirement: value,
				Kind:        kind,
			})
		case map[string]any:
			specs = append(specs, tableDependency(key, value, kind))
		default:
			logger.Warnf("Ignoring dependency %q: unsupported declaration %T", key, value)
		}
	}
	return specs
}

// tableDependency reads a `{ version, package, registry }` declaration.
// A missing version means any version, as Cargo treats it.
func tableDependency(key string, table map[string]any, kind entities.DependencyKind) entities.DependencySpec {
	spec := entities.DependencySpec{
		Name:        key,
		Key:         key,
		Requirement: "*",
		Kind:        kind,
	}
	if version, ok := table["version"].(string); ok {
		spec.Requirement = version
	}
	if pkg, ok := table["package"].(string); ok && pkg != "" {
		spec.Name = pkg
	}
	if registry, ok := table["registry"].(string); ok {
		spec.Registry = registry
	}
	return spec
}
