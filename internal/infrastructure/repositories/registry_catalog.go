package repositories

import (
	"fmt"
	"sort"
	"time"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
	domainRepos "github.com/rios0rios0/cratesup/internal/domain/repositories"
)

// RegistryFactory is a constructor function that creates a RegistryRepository
// for one registry.
type RegistryFactory func(
	registry entities.RegistryConfig,
	timeout time.Duration,
	userAgent string,
) (domainRepos.RegistryRepository, error)

// RegistryCatalog holds the registry clients of a run, keyed by registry name.
type RegistryCatalog struct {
	factory    RegistryFactory
	registries map[string]domainRepos.RegistryRepository
}

// NewRegistryCatalog creates an empty catalog that builds clients with the given factory.
func NewRegistryCatalog(factory RegistryFactory) *RegistryCatalog {
	return &RegistryCatalog{
		factory:    factory,
		registries: make(map[string]domainRepos.RegistryRepository),
	}
}

// Configure builds one client for crates.io and one per alternative registry
// declared in the settings. Any construction failure is returned.
func (r *RegistryCatalog) Configure(settings *entities.Settings) error {
	configs := make([]entities.RegistryConfig, 0, len(settings.Registries)+1)
	configs = append(configs, entities.RegistryConfig{
		Name: entities.DefaultRegistryName,
		URL:  entities.DefaultRegistryURL,
	})
	configs = append(configs, settings.Registries...)

	for _, cfg := range configs {
		registry, err := r.factory(cfg, settings.Timeout, settings.UserAgent)
		if err != nil {
			return fmt.Errorf("failed to create client for registry %q: %w", cfg.Name, err)
		}
		r.registries[cfg.Name] = registry
	}
	return nil
}

// Get returns the client for the given registry name. An empty name selects crates.io.
func (r *RegistryCatalog) Get(name string) (domainRepos.RegistryRepository, error) {
	if name == "" {
		name = entities.DefaultRegistryName
	}
	registry, ok := r.registries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownRegistry, name)
	}
	return registry, nil
}

// Names returns the sorted list of configured registry names.
func (r *RegistryCatalog) Names() []string {
	names := make([]string, 0, len(r.registries))
	for name := range r.registries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
