package entities

// DependencyKind is the manifest section a dependency was declared in.
type DependencyKind string

const (
	KindNormal DependencyKind = "normal"
	KindDev    DependencyKind = "dev"
	KindBuild  DependencyKind = "build"
)

// DependencySpec is a direct dependency as declared in the manifest.
type DependencySpec struct {
	Name        string         // Registry name of the crate
	Key         string         // Manifest key; differs from Name for renamed dependencies
	Requirement string         // Version requirement, verbatim
	Kind        DependencyKind // Section the dependency was declared in
	Registry    string         // Alternative registry name, empty for the default registry
}

// ManifestKey returns the key under which the dependency appears in the manifest.
func (it DependencySpec) ManifestKey() string {
	if it.Key != "" {
		return it.Key
	}
	return it.Name
}

// RegistrySnapshot holds the version data the registry reports for one crate.
type RegistrySnapshot struct {
	MaxVersion       string  // Newest published version, pre-releases included
	MaxStableVersion *string // Newest stable version, nil when none was published
}

// ResolvedDependency is the classification of a single dependency.
// RecommendedVersion is always a version the registry reported.
type ResolvedDependency struct {
	Name                string
	Key                 string
	Kind                DependencyKind
	DeclaredRequirement string
	RecommendedVersion  string
	UpdateAvailable     bool
}

// ManifestKey returns the key under which the dependency appears in the manifest.
func (it ResolvedDependency) ManifestKey() string {
	if it.Key != "" {
		return it.Key
	}
	return it.Name
}

// SkippedDependency records a dependency that could not be resolved.
type SkippedDependency struct {
	Name string
	Err  error
}

// CheckReport accumulates the results of a single run, in manifest order.
type CheckReport struct {
	Resolved []ResolvedDependency
	Skipped  []SkippedDependency
	Updated  bool
}

// Outdated returns the resolved dependencies that have an update available.
func (it *CheckReport) Outdated() []ResolvedDependency {
	outdated := make([]ResolvedDependency, 0, len(it.Resolved))
	for _, dep := range it.Resolved {
		if dep.UpdateAvailable {
			outdated = append(outdated, dep)
		}
	}
	return outdated
}

// HasUpdates reports whether at least one dependency is outdated.
func (it *CheckReport) HasUpdates() bool {
	for _, dep := range it.Resolved {
		if dep.UpdateAvailable {
			return true
		}
	}
	return false
}
