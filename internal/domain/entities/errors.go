package entities

import "errors"

// Per-dependency errors. Any of these causes the dependency to be skipped,
// never the whole run.
var (
	// ErrInvalidRequirement is returned when a requirement string cannot be parsed.
	ErrInvalidRequirement = errors.New("invalid version requirement")

	// ErrNoComparator is returned when a requirement parses but has no comparator
	// usable as a baseline (e.g. "*").
	ErrNoComparator = errors.New("no comparator found")

	// ErrInvalidRegistryVersion is returned when the registry reports a version
	// that is not a valid semantic version.
	ErrInvalidRegistryVersion = errors.New("invalid registry version")

	// ErrRegistryLookupFailed is returned for network, status or decoding failures
	// while querying the registry.
	ErrRegistryLookupFailed = errors.New("registry lookup failed")

	// ErrCrateNotFound is returned together with ErrRegistryLookupFailed when the
	// registry does not know the crate.
	ErrCrateNotFound = errors.New("crate not found")

	// ErrUnknownRegistry is returned when a dependency points at an alternative
	// registry that is not configured.
	ErrUnknownRegistry = errors.New("unknown registry")
)

// Manifest errors. These are fatal to the run.
var (
	ErrManifestRead  = errors.New("failed to read manifest")
	ErrManifestParse = errors.New("failed to parse manifest")
	ErrManifestWrite = errors.New("failed to write manifest")
)
