package destination

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	xlog "github.com/ariel-frischer/pkgctl/internal/log"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// ConfigurationDirName is the directory under the destinations directory
// that holds override records.
const ConfigurationDirName = "configuration"

// Store persists override records by key.
type Store interface {
	// Load returns the stored record and true, or false when the key has
	// never been configured.
	Load(key Key) (PathOverrides, bool, error)
	// Update replaces the stored record. An empty record removes the entry.
	Update(key Key, overrides PathOverrides) error
	// ResetAll removes the record and reports whether one existed.
	ResetAll(key Key) (bool, error)
	// Exists reports whether a record is stored for key.
	Exists(key Key) (bool, error)
}

// FileStore keeps one YAML file per key under Dir, grouped in a directory per
// destination. Each write replaces the file atomically, so readers never
// observe a partial record.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at the configuration directory of
// destinationsDir.
func NewFileStore(destinationsDir string) *FileStore {
	return &FileStore{Dir: filepath.Join(destinationsDir, ConfigurationDirName)}
}

// Path returns the file that holds key's record.
func (s *FileStore) Path(key Key) string {
	return filepath.Join(s.Dir, key.relPath())
}

// Load implements Store.
func (s *FileStore) Load(key Key) (PathOverrides, bool, error) {
	if err := key.Validate(); err != nil {
		return PathOverrides{}, false, err
	}
	path := s.Path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return PathOverrides{}, false, nil
		}
		return PathOverrides{}, false, fmt.Errorf("reading configuration %s: %w", path, err)
	}

	var overrides PathOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return PathOverrides{}, false, fmt.Errorf("parsing configuration %s: %w", path, err)
	}

	logger := xlog.WithComponent("store")
	logger.Debug().Str("key", key.String()).Str("path", path).Msg("loaded overrides")
	return overrides, true, nil
}

// Update implements Store.
func (s *FileStore) Update(key Key, overrides PathOverrides) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if overrides.IsEmpty() {
		_, err := s.ResetAll(key)
		return err
	}

	data, err := yaml.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	path := s.Path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating configuration directory: %w", err)
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing configuration %s: %w", path, err)
	}

	logger := xlog.WithComponent("store")
	logger.Debug().Str("key", key.String()).Str("path", path).Msg("stored overrides")
	return nil
}

// ResetAll implements Store.
func (s *FileStore) ResetAll(key Key) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, err
	}
	path := s.Path(key)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("removing configuration %s: %w", path, err)
	}
	// Only succeeds once the destination has no records left.
	_ = os.Remove(filepath.Dir(path))

	logger := xlog.WithComponent("store")
	logger.Debug().Str("key", key.String()).Str("path", path).Msg("removed overrides")
	return true, nil
}

// Exists implements Store.
func (s *FileStore) Exists(key Key) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, err
	}
	path := s.Path(key)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("checking configuration %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("configuration path %s is a directory", path)
	}
	return true, nil
}
