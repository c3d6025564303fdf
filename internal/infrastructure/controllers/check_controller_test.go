//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
	"github.com/rios0rios0/cratesup/internal/infrastructure/controllers"
	"github.com/rios0rios0/cratesup/test/domain/commanddoubles"
	"github.com/rios0rios0/cratesup/test/domain/entitybuilders"
)

// newCommand mounts the controller the way main does and captures its output.
func newCommand(t *testing.T, controller *controllers.CheckController, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	config := filepath.Join(t.TempDir(), "cratesup.yaml")
	require.NoError(t, os.WriteFile(config, []byte("ignore: [tokio]\n"), 0o600))

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	controller.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(append([]string{"--config", config}, args...)))

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	return cmd, out
}

func TestCheckController(t *testing.T) {
	t.Parallel()

	t.Run("should mount as the cratesup subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewCheckController(&commanddoubles.StubCheckCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "cratesup", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})

	t.Run("should pass flags and loaded settings to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{Report: &entities.CheckReport{}}
		controller := controllers.NewCheckController(stub)
		cmd, _ := newCommand(t, controller, "--update", "--manifest-path", "sub/Cargo.toml")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.True(t, stub.LastOpts.Update)
		assert.Equal(t, "sub/Cargo.toml", stub.LastOpts.ManifestPath)
		assert.True(t, stub.LastSettings.IsIgnored("tokio"))
	})

	t.Run("should print one line per dependency", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{Report: &entities.CheckReport{
			Resolved: []entities.ResolvedDependency{
				entitybuilders.NewResolvedDependencyBuilder().
					WithName("serde").WithRequirement("1.0").WithRecommended("1.0.200").
					BuildResolvedDependency(),
				entitybuilders.NewResolvedDependencyBuilder().
					WithName("anyhow").UpToDate().
					BuildResolvedDependency(),
			},
			Skipped: []entities.SkippedDependency{{Name: "local", Err: entities.ErrNoComparator}},
		}}
		controller := controllers.NewCheckController(stub)
		cmd, out := newCommand(t, controller)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "Crate serde has an update available:")
		assert.Contains(t, output, "1.0.200")
		assert.Contains(t, output, "Crate anyhow is up to date")
		assert.Contains(t, output, "Crate local was skipped")
		assert.NotContains(t, output, "All dependencies are up to date")
	})

	t.Run("should print the summary line", func(t *testing.T) {
		t.Parallel()

		cases := map[string]struct {
			report   *entities.CheckReport
			expected string
		}{
			"nothing outdated": {
				report:   &entities.CheckReport{},
				expected: "All dependencies are up to date",
			},
			"manifest updated": {
				report: &entities.CheckReport{
					Resolved: []entities.ResolvedDependency{
						entitybuilders.NewResolvedDependencyBuilder().BuildResolvedDependency(),
					},
					Updated: true,
				},
				expected: "Cargo.toml has been updated successfully",
			},
		}

		for name, tc := range cases {
			// given
			controller := controllers.NewCheckController(&commanddoubles.StubCheckCommand{Report: tc.report})
			cmd, out := newCommand(t, controller)

			// when
			err := controller.Execute(cmd, nil)

			// then
			require.NoError(t, err, name)
			assert.Contains(t, out.String(), tc.expected, name)
		}
	})

	t.Run("should return command failures", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{ExecuteErr: entities.ErrManifestParse}
		controller := controllers.NewCheckController(stub)
		cmd, _ := newCommand(t, controller)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrManifestParse)
	})

	t.Run("should fail for an invalid config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		controller := controllers.NewCheckController(stub)
		cmd, _ := newCommand(t, controller)
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("timeout: -5s\n"), 0o600))
		require.NoError(t, cmd.Flags().Set("config", bad))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.False(t, errors.Is(err, entities.ErrManifestParse))
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})
}
