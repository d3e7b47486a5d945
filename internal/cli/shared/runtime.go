package shared

import (
	"path/filepath"
	"strings"
)

// Runtime is the process context captured once in main. Commands read the
// working directory and environment from here instead of the process.
type Runtime struct {
	WorkDir string
	Environ []string
}

// Getenv returns the value of name in Environ, or "" when unset.
// The last assignment wins, matching exec semantics.
func (r Runtime) Getenv(name string) string {
	value := ""
	prefix := name + "="
	for _, kv := range r.Environ {
		if strings.HasPrefix(kv, prefix) {
			value = kv[len(prefix):]
		}
	}
	return value
}

// Resolve returns path made absolute against WorkDir.
func (r Runtime) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.WorkDir, path)
}
