//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	t.Run("should parse a full version with pre-release", func(t *testing.T) {
		t.Parallel()

		// when
		version, err := entities.ParseVersion("1.3.0-beta.1")

		// then
		require.NoError(t, err)
		assert.Equal(t, uint64(1), version.Major())
		assert.Equal(t, uint64(3), version.Minor())
		assert.Equal(t, uint64(0), version.Patch())
		assert.Equal(t, "beta.1", version.Prerelease())
		assert.True(t, version.IsPrerelease())
	})

	t.Run("should reject partial and prefixed versions", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "1", "1.2", "v1.2.3", "01.2.3", "1.2.3-", "latest"} {
			// when
			_, err := entities.ParseVersion(raw)

			// then
			assert.Error(t, err, raw)
		}
	})
}

func TestVersionCompare(t *testing.T) {
	t.Parallel()

	t.Run("should follow semantic version precedence", func(t *testing.T) {
		t.Parallel()

		// given
		chain := []string{
			"0.9.9",
			"1.0.0-alpha",
			"1.0.0-alpha.1",
			"1.0.0-alpha.beta",
			"1.0.0-beta",
			"1.0.0-beta.2",
			"1.0.0-beta.11",
			"1.0.0-rc.1",
			"1.0.0",
			"1.0.1",
			"1.10.0",
			"2.0.0",
		}

		for i := 1; i < len(chain); i++ {
			lower, err := entities.ParseVersion(chain[i-1])
			require.NoError(t, err)
			higher, err := entities.ParseVersion(chain[i])
			require.NoError(t, err)

			// when / then
			assert.True(t, lower.LessThan(higher), "%s < %s", chain[i-1], chain[i])
			assert.True(t, higher.GreaterThan(lower), "%s > %s", chain[i], chain[i-1])
		}
	})

	t.Run("should ignore build metadata", func(t *testing.T) {
		t.Parallel()

		// given
		left, err := entities.ParseVersion("1.0.0+linux")
		require.NoError(t, err)
		right, err := entities.ParseVersion("1.0.0+darwin")
		require.NoError(t, err)

		// when
		result := left.Compare(right)

		// then
		assert.Equal(t, 0, result)
	})

	t.Run("should treat the zero value as 0.0.0", func(t *testing.T) {
		t.Parallel()

		// given
		var zero entities.Version
		built := entities.NewVersion(0, 0, 0, "")

		// when
		result := zero.Compare(built)

		// then
		assert.Equal(t, 0, result)
		assert.Equal(t, "0.0.0", zero.String())
	})
}
