package destination

import "slices"

// PathOverrides holds the optional path overrides for one destination key.
// A nil field is absent. Present fields are never collapsed into absent ones,
// so an empty list stays an explicit empty override.
type PathOverrides struct {
	SDKRootPath              *string   `yaml:"sdk_root_path,omitempty"`
	SwiftResourcesPath       *string   `yaml:"swift_resources_path,omitempty"`
	SwiftStaticResourcesPath *string   `yaml:"swift_static_resources_path,omitempty"`
	IncludeSearchPaths       *[]string `yaml:"include_search_paths,omitempty"`
	LibrarySearchPaths       *[]string `yaml:"library_search_paths,omitempty"`
	ToolsetPaths             *[]string `yaml:"toolset_paths,omitempty"`
}

// IsEmpty reports whether every field is absent.
func (o PathOverrides) IsEmpty() bool {
	return o.SDKRootPath == nil &&
		o.SwiftResourcesPath == nil &&
		o.SwiftStaticResourcesPath == nil &&
		o.IncludeSearchPaths == nil &&
		o.LibrarySearchPaths == nil &&
		o.ToolsetPaths == nil
}

// Clone returns a deep copy that shares no memory with o.
func (o PathOverrides) Clone() PathOverrides {
	return PathOverrides{
		SDKRootPath:              cloneString(o.SDKRootPath),
		SwiftResourcesPath:       cloneString(o.SwiftResourcesPath),
		SwiftStaticResourcesPath: cloneString(o.SwiftStaticResourcesPath),
		IncludeSearchPaths:       cloneList(o.IncludeSearchPaths),
		LibrarySearchPaths:       cloneList(o.LibrarySearchPaths),
		ToolsetPaths:             cloneList(o.ToolsetPaths),
	}
}

// Equal reports structural equality, including which fields are present.
func (o PathOverrides) Equal(other PathOverrides) bool {
	return stringEqual(o.SDKRootPath, other.SDKRootPath) &&
		stringEqual(o.SwiftResourcesPath, other.SwiftResourcesPath) &&
		stringEqual(o.SwiftStaticResourcesPath, other.SwiftStaticResourcesPath) &&
		listEqual(o.IncludeSearchPaths, other.IncludeSearchPaths) &&
		listEqual(o.LibrarySearchPaths, other.LibrarySearchPaths) &&
		listEqual(o.ToolsetPaths, other.ToolsetPaths)
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

// ListPtr returns a pointer to a copy of paths. A nil argument still yields
// a present, empty list.
func ListPtr(paths ...string) *[]string {
	list := make([]string, len(paths))
	copy(list, paths)
	return &list
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	return StringPtr(*s)
}

func cloneList(l *[]string) *[]string {
	if l == nil {
		return nil
	}
	return ListPtr(*l...)
}

func stringEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func listEqual(a, b *[]string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(*a, *b)
}
