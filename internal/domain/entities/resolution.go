package entities

import "fmt"

// defaultStableVersion stands in for the stable version of crates that never
// published a stable release.
const defaultStableVersion = "0.0.0"

// ResolveDependency classifies a dependency against the versions reported by
// the registry and picks the version it should be bumped to.
//
// The baseline is built from the first comparator of the requirement. A stable
// baseline is always compared with the newest stable release. A pre-release
// baseline moves to the newest stable release once one supersedes it, and
// otherwise stays on the pre-release track and is compared with the newest
// release overall.
func ResolveDependency(dep DependencySpec, snapshot RegistrySnapshot) (ResolvedDependency, error) {
	requirement, err := ParseRequirement(dep.Requirement)
	if err != nil {
		return ResolvedDependency{}, fmt.Errorf("crate %s: %w", dep.Name, err)
	}

	baseline, err := requirement.Baseline()
	if err != nil {
		return ResolvedDependency{}, fmt.Errorf("crate %s: %w", dep.Name, err)
	}

	stableRaw := defaultStableVersion
	if snapshot.MaxStableVersion != nil {
		stableRaw = *snapshot.MaxStableVersion
	}

	latestStable, err := ParseVersion(stableRaw)
	if err != nil {
		return ResolvedDependency{}, fmt.Errorf(
			"crate %s: %w: latest stable version %q: %v", dep.Name, ErrInvalidRegistryVersion, stableRaw, err,
		)
	}

	latestOverall, err := ParseVersion(snapshot.MaxVersion)
	if err != nil {
		return ResolvedDependency{}, fmt.Errorf(
			"crate %s: %w: latest version %q: %v", dep.Name, ErrInvalidRegistryVersion, snapshot.MaxVersion, err,
		)
	}

	target, latest := stableRaw, latestStable
	if baseline.IsPrerelease() && !latestStable.GreaterThan(baseline) {
		target, latest = snapshot.MaxVersion, latestOverall
	}

	return ResolvedDependency{
		Name:                dep.Name,
		Key:                 dep.Key,
		Kind:                dep.Kind,
		DeclaredRequirement: dep.Requirement,
		RecommendedVersion:  target,
		UpdateAvailable:     baseline.LessThan(latest),
	}, nil
}
