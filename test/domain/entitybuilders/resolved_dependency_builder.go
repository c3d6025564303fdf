//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
)

// ResolvedDependencyBuilder helps create resolved dependencies with a fluent interface.
type ResolvedDependencyBuilder struct {
	*testkit.BaseBuilder
	name            string
	key             string
	kind            entities.DependencyKind
	requirement     string
	recommended     string
	updateAvailable bool
}

// NewResolvedDependencyBuilder creates a builder for an outdated normal dependency.
func NewResolvedDependencyBuilder() *ResolvedDependencyBuilder {
	return &ResolvedDependencyBuilder{
		BaseBuilder:     testkit.NewBaseBuilder(),
		name:            "serde",
		kind:            entities.KindNormal,
		requirement:     "1.0.0",
		recommended:     "1.0.200",
		updateAvailable: true,
	}
}

// WithName sets the crate name.
func (b *ResolvedDependencyBuilder) WithName(name string) *ResolvedDependencyBuilder {
	b.name = name
	return b
}

// WithKey sets the manifest key, for renamed dependencies.
func (b *ResolvedDependencyBuilder) WithKey(key string) *ResolvedDependencyBuilder {
	b.key = key
	return b
}

// WithKind sets the manifest section.
func (b *ResolvedDependencyBuilder) WithKind(kind entities.DependencyKind) *ResolvedDependencyBuilder {
	b.kind = kind
	return b
}

// WithRequirement sets the declared requirement.
func (b *ResolvedDependencyBuilder) WithRequirement(requirement string) *ResolvedDependencyBuilder {
	b.requirement = requirement
	return b
}

// WithRecommended sets the recommended version.
func (b *ResolvedDependencyBuilder) WithRecommended(version string) *ResolvedDependencyBuilder {
	b.recommended = version
	return b
}

// UpToDate marks the dependency as having no update.
func (b *ResolvedDependencyBuilder) UpToDate() *ResolvedDependencyBuilder {
	b.updateAvailable = false
	return b
}

// Build creates the resolved dependency (satisfies testkit.Builder interface).
func (b *ResolvedDependencyBuilder) Build() interface{} {
	return b.BuildResolvedDependency()
}

// BuildResolvedDependency creates the resolved dependency with a concrete return type.
func (b *ResolvedDependencyBuilder) BuildResolvedDependency() entities.ResolvedDependency {
	key := b.key
	if key == "" {
		key = b.name
	}
	return entities.ResolvedDependency{
		Name:                b.name,
		Key:                 key,
		Kind:                b.kind,
		DeclaredRequirement: b.requirement,
		RecommendedVersion:  b.recommended,
		UpdateAvailable:     b.updateAvailable,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ResolvedDependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "serde"
	b.key = ""
	b.kind = entities.KindNormal
	b.requirement = "1.0.0"
	b.recommended = "1.0.200"
	b.updateAvailable = true
	return b
}

// Clone creates a deep copy of the ResolvedDependencyBuilder.
func (b *ResolvedDependencyBuilder) Clone() testkit.Builder {
	return &ResolvedDependencyBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:            b.name,
		key:             b.key,
		kind:            b.kind,
		requirement:     b.requirement,
		recommended:     b.recommended,
		updateAvailable: b.updateAvailable,
	}
}
