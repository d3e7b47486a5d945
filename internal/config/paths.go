package config

import (
	"os"
	"path/filepath"
)

// ProjectDirName is the per-project configuration directory.
const ProjectDirName = ".pkgctl"

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/pkgctl/config.yml
// - macOS: ~/Library/Application Support/pkgctl/config.yml
// - Windows: %APPDATA%\pkgctl\config.yml
func UserConfigPath() (string, error) {
	dir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yml"), nil
}

// UserConfigDir returns the path to the user-level config directory.
func UserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "pkgctl"), nil
}

// ProjectConfigPath returns the project-level config file under workDir.
func ProjectConfigPath(workDir string) string {
	return filepath.Join(workDir, ProjectDirName, "config.yml")
}
