package destination

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DescriptorFileName is the descriptor file inside an installed destination's directory.
const DescriptorFileName = "destination.json"

// ErrDescriptorNotFound is returned when no destination with the given ID is installed.
var ErrDescriptorNotFound = errors.New("destination descriptor not found")

// Descriptor is an installed destination. Its per-triple paths are the
// defaults that override records are layered on.
type Descriptor struct {
	ID            string
	BundleDir     string
	SchemaVersion string
	// PathsConfiguration maps a target triple to its default paths.
	PathsConfiguration map[string]PathOverrides
}

type descriptorFile struct {
	SchemaVersion string                `koanf:"schemaVersion"`
	TargetTriples map[string]tripleFile `koanf:"targetTriples"`
}

type tripleFile struct {
	SDKRootPath              string   `koanf:"sdkRootPath"`
	SwiftResourcesPath       string   `koanf:"swiftResourcesPath"`
	SwiftStaticResourcesPath string   `koanf:"swiftStaticResourcesPath"`
	IncludeSearchPaths       []string `koanf:"includeSearchPaths"`
	LibrarySearchPaths       []string `koanf:"librarySearchPaths"`
	ToolsetPaths             []string `koanf:"toolsetPaths"`
}

// DescriptorPath returns where the descriptor for id is expected.
func DescriptorPath(destinationsDir, id string) string {
	return filepath.Join(destinationsDir, url.PathEscape(id), DescriptorFileName)
}

// LoadDescriptor reads the descriptor of destination id. Relative paths in
// the file are resolved against the descriptor's directory.
func LoadDescriptor(destinationsDir, id string) (*Descriptor, error) {
	path := DescriptorPath(destinationsDir, id)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDescriptorNotFound, id)
		}
		return nil, fmt.Errorf("checking descriptor %s: %w", path, err)
	}

	// Triples contain dots, so "." cannot be the key delimiter.
	k := koanf.New("/")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return nil, fmt.Errorf("loading descriptor %s: %w", path, err)
	}

	var raw descriptorFile
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, fmt.Errorf("decoding descriptor %s: %w", path, err)
	}

	bundleDir := filepath.Dir(path)
	d := &Descriptor{
		ID:                 id,
		BundleDir:          bundleDir,
		SchemaVersion:      raw.SchemaVersion,
		PathsConfiguration: make(map[string]PathOverrides, len(raw.TargetTriples)),
	}
	for triple, paths := range raw.TargetTriples {
		d.PathsConfiguration[triple] = paths.toOverrides(bundleDir)
	}
	return d, nil
}

// Effective layers overrides on the descriptor defaults for triple. Present
// override fields win; absent ones keep the default.
func (d *Descriptor) Effective(triple string, overrides PathOverrides) (PathOverrides, error) {
	defaults, ok := d.PathsConfiguration[triple]
	if !ok {
		return PathOverrides{}, fmt.Errorf("destination %s does not support target triple %s", d.ID, triple)
	}

	effective := defaults.Clone()
	for _, p := range Properties {
		if values, present := p.Get(overrides); present {
			p.Set(&effective, values)
		}
	}
	return effective, nil
}

func (t tripleFile) toOverrides(bundleDir string) PathOverrides {
	var o PathOverrides
	if t.SDKRootPath != "" {
		o.SDKRootPath = StringPtr(resolve(bundleDir, t.SDKRootPath))
	}
	if t.SwiftResourcesPath != "" {
		o.SwiftResourcesPath = StringPtr(resolve(bundleDir, t.SwiftResourcesPath))
	}
	if t.SwiftStaticResourcesPath != "" {
		o.SwiftStaticResourcesPath = StringPtr(resolve(bundleDir, t.SwiftStaticResourcesPath))
	}
	if t.IncludeSearchPaths != nil {
		o.IncludeSearchPaths = resolveAll(bundleDir, t.IncludeSearchPaths)
	}
	if t.LibrarySearchPaths != nil {
		o.LibrarySearchPaths = resolveAll(bundleDir, t.LibrarySearchPaths)
	}
	if t.ToolsetPaths != nil {
		o.ToolsetPaths = resolveAll(bundleDir, t.ToolsetPaths)
	}
	return o
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func resolveAll(base string, paths []string) *[]string {
	resolved := make([]string, len(paths))
	for i, p := range paths {
		resolved[i] = resolve(base, p)
	}
	return &resolved
}
