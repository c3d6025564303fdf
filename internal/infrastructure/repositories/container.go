package repositories

import (
	"go.uber.org/dig"

	cargoRepo "github.com/rios0rios0/cratesup/internal/infrastructure/repositories/cargo"
	cratesRepo "github.com/rios0rios0/cratesup/internal/infrastructure/repositories/crates"
	gitRepo "github.com/rios0rios0/cratesup/internal/infrastructure/repositories/git"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Registry clients are created per run from the loaded settings
	if err := container.Provide(func() *RegistryCatalog {
		return NewRegistryCatalog(cratesRepo.NewRegistryRepository)
	}); err != nil {
		return err
	}

	if err := container.Provide(cargoRepo.NewManifestRepository); err != nil {
		return err
	}

	if err := container.Provide(gitRepo.NewWorkspaceRepository); err != nil {
		return err
	}

	return nil
}
