// Package product locates built binaries and runs them as subprocesses with
// captured output. The test harness uses it to drive the pkgctl binary.
package product

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// ErrProductNotFound is returned when no binary exists for a product name.
var ErrProductNotFound = errors.New("product not found")

// Locator resolves product names to binaries in BinDir.
type Locator struct {
	BinDir string
}

// NewLocator returns a Locator for the given build output directory.
func NewLocator(binDir string) *Locator {
	return &Locator{BinDir: binDir}
}

// Path returns the absolute path of product's binary.
func (l *Locator) Path(product string) (string, error) {
	if product == "" {
		return "", fmt.Errorf("product name must not be empty")
	}

	name := product
	if runtime.GOOS == "windows" && filepath.Ext(name) != ".exe" {
		name += ".exe"
	}

	path, err := filepath.Abs(filepath.Join(l.BinDir, name))
	if err != nil {
		return "", fmt.Errorf("resolving path of %s: %w", product, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s (looked in %s)", ErrProductNotFound, product, l.BinDir)
		}
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrProductNotFound, path)
	}
	return path, nil
}
