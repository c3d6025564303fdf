//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
)

// DependencySpecBuilder helps create test dependency specs with a fluent interface.
type DependencySpecBuilder struct {
	*testkit.BaseBuilder
	name        string
	key         string
	requirement string
	kind        entities.DependencyKind
	registry    string
}

// NewDependencySpecBuilder creates a new dependency spec builder with sensible defaults.
func NewDependencySpecBuilder() *DependencySpecBuilder {
	return &DependencySpecBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "serde",
		requirement: "1.0.0",
		kind:        entities.KindNormal,
	}
}

// WithName sets the registry name of the crate.
func (b *DependencySpecBuilder) WithName(name string) *DependencySpecBuilder {
	b.name = name
	return b
}

// WithKey sets the manifest key, for renamed dependencies.
func (b *DependencySpecBuilder) WithKey(key string) *DependencySpecBuilder {
	b.key = key
	return b
}

// WithRequirement sets the declared version requirement.
func (b *DependencySpecBuilder) WithRequirement(requirement string) *DependencySpecBuilder {
	b.requirement = requirement
	return b
}

// WithKind sets the manifest section.
func (b *DependencySpecBuilder) WithKind(kind entities.DependencyKind) *DependencySpecBuilder {
	b.kind = kind
	return b
}

// WithRegistry sets the alternative registry name.
func (b *DependencySpecBuilder) WithRegistry(registry string) *DependencySpecBuilder {
	b.registry = registry
	return b
}

// Build creates the dependency spec (satisfies testkit.Builder interface).
func (b *DependencySpecBuilder) Build() interface{} {
	return b.BuildDependencySpec()
}

// BuildDependencySpec creates the dependency spec with a concrete return type.
func (b *DependencySpecBuilder) BuildDependencySpec() entities.DependencySpec {
	key := b.key
	if key == "" {
		key = b.name
	}
	return entities.DependencySpec{
		Name:        b.name,
		Key:         key,
		Requirement: b.requirement,
		Kind:        b.kind,
		Registry:    b.registry,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencySpecBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "serde"
	b.key = ""
	b.requirement = "1.0.0"
	b.kind = entities.KindNormal
	b.registry = ""
	return b
}

// Clone creates a deep copy of the DependencySpecBuilder.
func (b *DependencySpecBuilder) Clone() testkit.Builder {
	return &DependencySpecBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		key:         b.key,
		requirement: b.requirement,
		kind:        b.kind,
		registry:    b.registry,
	}
}
