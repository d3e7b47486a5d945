package config

// DefaultDestinationsDir is where destinations live unless configured.
const DefaultDestinationsDir = "~/.pkgctl/destinations"

// GetDefaults returns the default configuration values keyed by koanf path.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"destinations_dir":     DefaultDestinationsDir,
		"log_level":            "warn",
		"no_color":             false,
		"default_package_type": "library",
	}
}
