// pkgctl - package scaffolding and destination configuration CLI
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/pkgctl

// Package config provides hierarchical configuration management for pkgctl using koanf.
// Configuration is loaded with priority: environment variables > project config (.pkgctl/config.yml)
// > user config (~/.config/pkgctl/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "PKGCTL_"

// Configuration represents the pkgctl CLI tool configuration
type Configuration struct {
	// DestinationsDir holds installed destinations and the configuration/
	// directory of per-destination path overrides.
	// Can be set via PKGCTL_DESTINATIONS_DIR env var.
	DestinationsDir string `koanf:"destinations_dir"`

	// LogLevel controls debug logging on stderr: debug | info | warn | error.
	LogLevel string `koanf:"log_level"`

	NoColor bool `koanf:"no_color"`

	// DefaultPackageType is used by init when --type is not given.
	DefaultPackageType string `koanf:"default_package_type"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// WorkDir anchors the project config and relative paths. Empty means ".".
	WorkDir string
	// ProjectConfigPath overrides the project config path (default: <WorkDir>/.pkgctl/config.yml)
	ProjectConfigPath string
	// UserConfigPath overrides the user config path. Tests point it into a temp dir.
	UserConfigPath string
}

// Load loads configuration for the project rooted at workDir.
func Load(workDir string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{WorkDir: workDir})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath, _ = UserConfigPath()
	}
	if fileExists(userPath) {
		if err := loadYAMLConfig(k, userPath, "user"); err != nil {
			return nil, err
		}
	}

	projectPath := opts.ProjectConfigPath
	if projectPath == "" {
		projectPath = ProjectConfigPath(opts.WorkDir)
	} else if !filepath.IsAbs(projectPath) && opts.WorkDir != "" {
		projectPath = filepath.Join(opts.WorkDir, projectPath)
	}
	if fileExists(projectPath) {
		if err := loadYAMLConfig(k, projectPath, "project"); err != nil {
			return nil, err
		}
	} else if opts.ProjectConfigPath != "" {
		return nil, fmt.Errorf("config file %s not found", projectPath)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return finalizeConfig(k, opts.WorkDir)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// finalizeConfig unmarshals, validates and resolves paths
func finalizeConfig(k *koanf.Koanf, workDir string) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.DestinationsDir = ResolvePath(workDir, cfg.DestinationsDir)
	return &cfg, nil
}

// ResolvePath expands a leading ~ and anchors relative paths at workDir.
func ResolvePath(workDir, path string) string {
	path = expandHomePath(path)
	if path == "" || filepath.IsAbs(path) || workDir == "" {
		return path
	}
	return filepath.Join(workDir, path)
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: PKGCTL_DESTINATIONS_DIR -> destinations_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
