package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ariel-frischer/pkgctl/internal/scaffold"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeString
	TypeEnum
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type and validation rules.
type ConfigKeySchema struct {
	Path          string          // Key path (e.g., "log_level")
	Type          ConfigValueType // Expected value type for validation
	AllowedValues []string        // Valid values for enum types (empty for non-enums)
	Description   string          // Human-readable description for help text
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"destinations_dir": {
		Path:        "destinations_dir",
		Type:        TypeString,
		Description: "Directory of installed destinations and their path overrides",
	},
	"log_level": {
		Path:          "log_level",
		Type:          TypeEnum,
		AllowedValues: []string{"debug", "info", "warn", "error"},
		Description:   "Debug log level written to stderr",
	},
	"no_color": {
		Path:        "no_color",
		Type:        TypeBool,
		Description: "Disable colored output",
	},
	"default_package_type": {
		Path:          "default_package_type",
		Type:          TypeEnum,
		AllowedValues: scaffold.PackageTypeNames(),
		Description:   "Package type used by init when --type is omitted",
	},
}

// ErrUnknownKey is returned when trying to access an unknown configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(path string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[path]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: path}
	}
	return schema, nil
}

// SortedKeys returns the known key paths in lexical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(KnownKeys))
	for k := range KnownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidateValue checks a string value against the schema for key.
func ValidateValue(key, value string) error {
	schema, err := GetKeySchema(key)
	if err != nil {
		return err
	}

	switch schema.Type {
	case TypeBool:
		switch strings.ToLower(value) {
		case "true", "false":
			return nil
		}
		return fmt.Errorf("invalid boolean: %q (expected true or false)", value)
	case TypeEnum:
		for _, allowed := range schema.AllowedValues {
			if value == allowed {
				return nil
			}
		}
		return fmt.Errorf("invalid value: %q (valid options: %s)", value, strings.Join(schema.AllowedValues, ", "))
	default:
		return nil
	}
}
