package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRegistryName is the name Cargo uses for crates.io.
	DefaultRegistryName = "crates-io"
	// DefaultRegistryURL is the crates.io web API root.
	DefaultRegistryURL = "https://crates.io/api/v1"
	// DefaultManifest is the manifest path used when none is given.
	DefaultManifest = "Cargo.toml"
	// DefaultTimeout bounds every registry request.
	DefaultTimeout = 1000 * time.Millisecond
	// DefaultUserAgent is sent with every registry request, as crates.io requires one.
	DefaultUserAgent = "cratesup (https://github.com/rios0rios0/cratesup)"
)

// Settings is the configuration for a cratesup run.
type Settings struct {
	Manifest   string           `yaml:"manifest"`
	Timeout    time.Duration    `yaml:"timeout"`
	UserAgent  string           `yaml:"user_agent"`
	Ignore     []string         `yaml:"ignore"`
	Registries []RegistryConfig `yaml:"registries"`
}

// RegistryConfig describes an alternative registry exposing the crates.io web API.
type RegistryConfig struct {
	Name  string `yaml:"name"`  // Name used in the manifest's `registry = "..."` field
	URL   string `yaml:"url"`   // Web API root, e.g. https://my-registry.example/api/v1
	Token string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Manifest:  DefaultManifest,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for i := range settings.Registries {
		settings.Registries[i].Token = resolveToken(settings.Registries[i].Token)
	}

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// IsIgnored reports whether the crate is excluded from checks.
func (it *Settings) IsIgnored(name string) bool {
	return slices.Contains(it.Ignore, name)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".cratesup.yaml",
		".cratesup.yml",
		"cratesup.yaml",
		"cratesup.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if settings.Manifest == "" {
		return errors.New("manifest must not be empty")
	}
	if settings.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", settings.Timeout)
	}

	seen := make(map[string]bool, len(settings.Registries))
	for i, registry := range settings.Registries {
		if registry.Name == "" {
			return fmt.Errorf("registries[%d].name is required", i)
		}
		if registry.URL == "" {
			return fmt.Errorf("registries[%d].url is required", i)
		}
		if registry.Name == DefaultRegistryName {
			return fmt.Errorf("registries[%d].name %q is reserved for crates.io", i, registry.Name)
		}
		if seen[registry.Name] {
			return fmt.Errorf("registries[%d].name %q is declared twice", i, registry.Name)
		}
		seen[registry.Name] = true
	}

	return nil
}
