// Package scaffold writes the skeleton of a new package: manifest, sources,
// tests and plugin targets, chosen by package type.
package scaffold

import (
	clierrors "github.com/ariel-frischer/pkgctl/internal/errors"
)

// PackageType selects which skeleton is generated.
type PackageType string

const (
	Library         PackageType = "library"
	Executable      PackageType = "executable"
	Tool            PackageType = "tool"
	BuildToolPlugin PackageType = "build-tool-plugin"
	CommandPlugin   PackageType = "command-plugin"
	Macro           PackageType = "macro"
	Empty           PackageType = "empty"
)

// PackageTypes lists every package type in help-text order.
var PackageTypes = []PackageType{
	Library,
	Executable,
	Tool,
	BuildToolPlugin,
	CommandPlugin,
	Macro,
	Empty,
}

// PackageTypeNames returns the names of all package types.
func PackageTypeNames() []string {
	out := make([]string, len(PackageTypes))
	for i, t := range PackageTypes {
		out[i] = string(t)
	}
	return out
}

// ParsePackageType converts a --type value into a PackageType.
func ParsePackageType(s string) (PackageType, error) {
	for _, t := range PackageTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", clierrors.UnknownPackageType(s, PackageTypeNames())
}

// String implements fmt.Stringer and pflag.Value.
func (t PackageType) String() string {
	return string(t)
}

// Set implements pflag.Value so PackageType can back a cobra flag directly.
func (t *PackageType) Set(s string) error {
	parsed, err := ParsePackageType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Type implements pflag.Value.
func (t *PackageType) Type() string {
	return "type"
}

// Options are the optional features of a generated package.
type Options struct {
	// WithDocs adds a documentation catalog. Only valid for libraries.
	WithDocs bool
}

// Validate checks that the options make sense for packageType. It is called
// before anything is written.
func Validate(packageType PackageType, opts Options) error {
	if _, err := ParsePackageType(string(packageType)); err != nil {
		return err
	}
	if opts.WithDocs && packageType != Library {
		return clierrors.DocsRequireLibrary(string(packageType))
	}
	return nil
}
