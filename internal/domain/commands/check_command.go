package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
	"github.com/rios0rios0/cratesup/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/cratesup/internal/infrastructure/repositories"
)

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) (*entities.CheckReport, error)
}

// CheckOptions holds runtime options for a single check.
type CheckOptions struct {
	ManifestPath string // If set, overrides the manifest from the settings
	Update       bool   // Rewrite outdated versions in the manifest
	Verbose      bool
}

// CheckCommand orchestrates a run:
// read manifest -> fetch registry snapshots -> resolve -> optionally update.
type CheckCommand struct {
	registryCatalog     *infraRepos.RegistryCatalog
	manifestRepository  repositories.ManifestRepository
	workspaceRepository repositories.WorkspaceRepository
}

// NewCheckCommand creates a new CheckCommand with the given repositories.
func NewCheckCommand(
	registryCatalog *infraRepos.RegistryCatalog,
	manifestRepository repositories.ManifestRepository,
	workspaceRepository repositories.WorkspaceRepository,
) *CheckCommand {
	return &CheckCommand{
		registryCatalog:     registryCatalog,
		manifestRepository:  manifestRepository,
		workspaceRepository: workspaceRepository,
	}
}

// Execute checks every direct dependency of the manifest and, when asked to,
// rewrites the outdated ones. Dependencies that cannot be resolved are
// recorded as skipped; only manifest and registry setup failures abort the run.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckOptions,
) (*entities.CheckReport, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	manifestPath := settings.Manifest
	if opts.ManifestPath != "" {
		manifestPath = opts.ManifestPath
	}

	if err := it.registryCatalog.Configure(settings); err != nil {
		return nil, err
	}
	logger.Debugf("Configured registries: %v", it.registryCatalog.Names())

	deps, err := it.manifestRepository.ReadDependencies(manifestPath)
	if err != nil {
		return nil, err
	}

	report := &entities.CheckReport{}
	for _, dep := range deps {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		if settings.IsIgnored(dep.Name) {
			logger.Debugf("Crate %s is ignored by configuration", dep.Name)
			continue
		}

		resolved, resolveErr := it.resolve(ctx, dep)
		if resolveErr != nil {
			logger.Errorf("Skipping crate %s: %v", dep.Name, resolveErr)
			report.Skipped = append(report.Skipped, entities.SkippedDependency{Name: dep.Name, Err: resolveErr})
			continue
		}
		report.Resolved = append(report.Resolved, resolved)
	}

	if !opts.Update || !report.HasUpdates() {
		return report, nil
	}

	it.warnIfDirty(manifestPath)

	if err = it.manifestRepository.ApplyUpdates(manifestPath, report.Resolved); err != nil {
		return report, err
	}
	report.Updated = true
	logger.Infof("Updated %d dependencies in %s", len(report.Outdated()), manifestPath)

	return report, nil
}

// resolve fetches the registry snapshot of one dependency and classifies it.
func (it *CheckCommand) resolve(
	ctx context.Context,
	dep entities.DependencySpec,
) (entities.ResolvedDependency, error) {
	registry, err := it.registryCatalog.Get(dep.Registry)
	if err != nil {
		return entities.ResolvedDependency{}, fmt.Errorf("crate %s: %w", dep.Name, err)
	}

	logger.Debugf("[%s] Fetching %s", registry.Name(), dep.Name)
	snapshot, err := registry.FetchSnapshot(ctx, dep.Name)
	if err != nil {
		return entities.ResolvedDependency{}, fmt.Errorf("crate %s: %w", dep.Name, err)
	}

	return entities.ResolveDependency(dep, snapshot)
}

// warnIfDirty logs a warning when the manifest has uncommitted changes that
// the update would mix with its own.
func (it *CheckCommand) warnIfDirty(manifestPath string) {
	dirty, err := it.workspaceRepository.HasUncommittedChanges(manifestPath)
	if err != nil {
		logger.Debugf("Could not inspect workspace of %s: %v", manifestPath, err)
		return
	}
	if dirty {
		logger.Warnf("%s has uncommitted changes", manifestPath)
	}
}
