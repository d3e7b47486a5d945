package destination

import "fmt"

// Property describes one configurable override field. The Properties table
// is the single mapping from CLI flag to record field.
type Property struct {
	// Name is the property name reported to users, e.g. "sdkRootPath".
	Name string
	// Flag is the CLI flag name, e.g. "sdk-root-path".
	Flag string
	// Usage is the flag help text for 'config set'.
	Usage string
	// List is true for properties holding a sequence of paths.
	List bool

	clear func(*PathOverrides)
	set   func(*PathOverrides, []string)
	get   func(PathOverrides) ([]string, bool)
}

// Clear makes the property absent in o.
func (p Property) Clear(o *PathOverrides) { p.clear(o) }

// Set makes the property present in o. Single-path properties take the last
// value when given several.
func (p Property) Set(o *PathOverrides, values []string) { p.set(o, values) }

// Get returns the property's value and whether it is present.
func (p Property) Get(o PathOverrides) ([]string, bool) { return p.get(o) }

var (
	SDKRootPath = Property{
		Name:  "sdkRootPath",
		Flag:  "sdk-root-path",
		Usage: "Path to the SDK root directory",
		clear: func(o *PathOverrides) { o.SDKRootPath = nil },
		set:   func(o *PathOverrides, v []string) { o.SDKRootPath = lastValue(v) },
		get:   func(o PathOverrides) ([]string, bool) { return singleValue(o.SDKRootPath) },
	}
	SwiftResourcesPath = Property{
		Name:  "swiftResourcesPath",
		Flag:  "swift-resources-path",
		Usage: "Path to the resources directory used for dynamic linking",
		clear: func(o *PathOverrides) { o.SwiftResourcesPath = nil },
		set:   func(o *PathOverrides, v []string) { o.SwiftResourcesPath = lastValue(v) },
		get:   func(o PathOverrides) ([]string, bool) { return singleValue(o.SwiftResourcesPath) },
	}
	SwiftStaticResourcesPath = Property{
		Name:  "swiftStaticResourcesPath",
		Flag:  "swift-static-resources-path",
		Usage: "Path to the resources directory used for static linking",
		clear: func(o *PathOverrides) { o.SwiftStaticResourcesPath = nil },
		set:   func(o *PathOverrides, v []string) { o.SwiftStaticResourcesPath = lastValue(v) },
		get:   func(o PathOverrides) ([]string, bool) { return singleValue(o.SwiftStaticResourcesPath) },
	}
	IncludeSearchPaths = Property{
		Name:  "includeSearchPaths",
		Flag:  "include-search-path",
		Usage: "Header search path (repeatable)",
		List:  true,
		clear: func(o *PathOverrides) { o.IncludeSearchPaths = nil },
		set:   func(o *PathOverrides, v []string) { o.IncludeSearchPaths = ListPtr(v...) },
		get:   func(o PathOverrides) ([]string, bool) { return listValue(o.IncludeSearchPaths) },
	}
	LibrarySearchPaths = Property{
		Name:  "librarySearchPaths",
		Flag:  "library-search-path",
		Usage: "Library search path (repeatable)",
		List:  true,
		clear: func(o *PathOverrides) { o.LibrarySearchPaths = nil },
		set:   func(o *PathOverrides, v []string) { o.LibrarySearchPaths = ListPtr(v...) },
		get:   func(o PathOverrides) ([]string, bool) { return listValue(o.LibrarySearchPaths) },
	}
	ToolsetPaths = Property{
		Name:  "toolsetPaths",
		Flag:  "toolset-path",
		Usage: "Path to a toolset file (repeatable)",
		List:  true,
		clear: func(o *PathOverrides) { o.ToolsetPaths = nil },
		set:   func(o *PathOverrides, v []string) { o.ToolsetPaths = ListPtr(v...) },
		get:   func(o PathOverrides) ([]string, bool) { return listValue(o.ToolsetPaths) },
	}
)

// Properties lists every property in declaration order. Reports always
// follow this order.
var Properties = []Property{
	SDKRootPath,
	SwiftResourcesPath,
	SwiftStaticResourcesPath,
	IncludeSearchPaths,
	LibrarySearchPaths,
	ToolsetPaths,
}

// PropertyByFlag looks a property up by its CLI flag name.
func PropertyByFlag(flag string) (Property, error) {
	for _, p := range Properties {
		if p.Flag == flag {
			return p, nil
		}
	}
	return Property{}, fmt.Errorf("unknown configuration property flag %q", flag)
}

// PropertyByName looks a property up by its reported name.
func PropertyByName(name string) (Property, error) {
	for _, p := range Properties {
		if p.Name == name {
			return p, nil
		}
	}
	return Property{}, fmt.Errorf("unknown configuration property %q", name)
}

// inDeclarationOrder returns the selected properties in table order without
// duplicates, whatever order they were requested in.
func inDeclarationOrder(selected []Property) []Property {
	want := make(map[string]bool, len(selected))
	for _, p := range selected {
		want[p.Name] = true
	}
	ordered := make([]Property, 0, len(want))
	for _, p := range Properties {
		if want[p.Name] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

func names(props []Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.Name
	}
	return out
}

func lastValue(values []string) *string {
	if len(values) == 0 {
		return StringPtr("")
	}
	return StringPtr(values[len(values)-1])
}

func singleValue(s *string) ([]string, bool) {
	if s == nil {
		return nil, false
	}
	return []string{*s}, true
}

func listValue(l *[]string) ([]string, bool) {
	if l == nil {
		return nil, false
	}
	return append([]string{}, *l...), true
}
