package entities

import (
	mmsemver "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"
)

// Version is a strict semantic version (MAJOR.MINOR.PATCH[-PRE][+BUILD]).
// The zero value is 0.0.0.
type Version struct {
	inner mmsemver.Version
}

// NewVersion builds a version from its parts. The pre-release tag is used
// verbatim and may be empty.
func NewVersion(major, minor, patch uint64, pre string) Version {
	return Version{inner: *mmsemver.New(major, minor, patch, pre, "")}
}

// ParseVersion parses a strict semantic version. Leading "v", partial
// versions and leading zeros are rejected.
func ParseVersion(raw string) (Version, error) {
	parsed, err := mmsemver.StrictNewVersion(raw)
	if err != nil {
		return Version{}, err
	}
	return Version{inner: *parsed}, nil
}

func (it Version) Major() uint64 { return it.inner.Major() }

func (it Version) Minor() uint64 { return it.inner.Minor() }

func (it Version) Patch() uint64 { return it.inner.Patch() }

// Prerelease returns the pre-release tag without the leading dash.
func (it Version) Prerelease() string { return it.inner.Prerelease() }

// IsPrerelease reports whether the version carries a pre-release tag.
func (it Version) IsPrerelease() bool { return it.inner.Prerelease() != "" }

func (it Version) String() string { return it.inner.String() }

// Compare returns -1, 0 or +1 following semantic version precedence.
// Build metadata does not take part in the ordering.
func (it Version) Compare(other Version) int {
	return semver.Compare(canonical(it), canonical(other))
}

// LessThan reports whether it orders strictly before other.
func (it Version) LessThan(other Version) bool {
	return it.Compare(other) < 0
}

// GreaterThan reports whether it orders strictly after other.
func (it Version) GreaterThan(other Version) bool {
	return it.Compare(other) > 0
}

// canonical renders the version in the "v"-prefixed form x/mod/semver expects.
func canonical(v Version) string {
	return "v" + v.String()
}
