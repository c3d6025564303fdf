package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cratesup/internal/domain/commands"
	"github.com/rios0rios0/cratesup/internal/domain/entities"
)

// CheckController handles the "cratesup" subcommand that cargo dispatches to.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "cratesup",
		Short: "Check the dependencies of a Cargo manifest for updates",
		Long: `Check every direct dependency of a Cargo manifest against its registry
and report the ones with a newer release.

With --update, the version requirements of outdated entries in the
[dependencies] section are rewritten in place. Comments and formatting
of the manifest are preserved.`,
	}
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("update", "u", false, "Update outdated dependencies in the manifest")
	cmd.Flags().String("manifest-path", "", "Path to Cargo.toml (default: Cargo.toml)")
}

// Execute runs a check and prints its report.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	update, _ := cmd.Flags().GetBool("update")
	manifestPath, _ := cmd.Flags().GetString("manifest-path")

	settings, err := loadSettings(configPath)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(ctx, settings, commands.CheckOptions{
		ManifestPath: manifestPath,
		Update:       update,
		Verbose:      verbose,
	})
	if report != nil {
		printReport(cmd.OutOrStdout(), report)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	return nil
}

// loadSettings reads the given config file, or the first one found in the
// standard locations, falling back to defaults when there is none.
func loadSettings(configPath string) (*entities.Settings, error) {
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return entities.NewDefaultSettings(), nil
		}
		configPath = found
	}

	logger.Debugf("Using config file: %s", configPath)
	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}
