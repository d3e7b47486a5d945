package destination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties_DeclarationOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"sdkRootPath",
		"swiftResourcesPath",
		"swiftStaticResourcesPath",
		"includeSearchPaths",
		"librarySearchPaths",
		"toolsetPaths",
	}, names(Properties))
}

// Every property must clear exactly its own field.
func TestProperties_ClearTouchesOneField(t *testing.T) {
	t.Parallel()

	for _, p := range Properties {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			t.Parallel()

			record := fullRecord()
			p.Clear(&record)

			_, present := p.Get(record)
			assert.False(t, present)

			for _, other := range Properties {
				if other.Name == p.Name {
					continue
				}
				got, ok := other.Get(record)
				want, _ := other.Get(fullRecord())
				assert.True(t, ok, "%s should stay present", other.Name)
				assert.Equal(t, want, got, "%s should be unchanged", other.Name)
			}
		})
	}
}

func TestProperties_StaticResourcesIsNotDynamic(t *testing.T) {
	t.Parallel()

	record := fullRecord()
	SwiftStaticResourcesPath.Clear(&record)

	assert.Nil(t, record.SwiftStaticResourcesPath)
	require.NotNil(t, record.SwiftResourcesPath)
	assert.Equal(t, "/res/dynamic", *record.SwiftResourcesPath)
}

func TestProperty_Set(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		property Property
		values   []string
		want     []string
	}{
		"single takes last value": {property: SDKRootPath, values: []string{"/a", "/b"}, want: []string{"/b"}},
		"list keeps all values":   {property: ToolsetPaths, values: []string{"/a", "/b"}, want: []string{"/a", "/b"}},
		"empty list is present":   {property: LibrarySearchPaths, values: nil, want: []string{}},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var record PathOverrides
			tt.property.Set(&record, tt.values)

			got, present := tt.property.Get(record)
			assert.True(t, present)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertyLookup(t *testing.T) {
	t.Parallel()

	p, err := PropertyByFlag("swift-static-resources-path")
	require.NoError(t, err)
	assert.Equal(t, "swiftStaticResourcesPath", p.Name)

	p, err = PropertyByName("toolsetPaths")
	require.NoError(t, err)
	assert.Equal(t, "toolset-path", p.Flag)

	_, err = PropertyByFlag("sdk-path")
	assert.Error(t, err)
	_, err = PropertyByName("sdkPath")
	assert.Error(t, err)
}

func TestInDeclarationOrder_SortsAndDeduplicates(t *testing.T) {
	t.Parallel()

	got := inDeclarationOrder([]Property{ToolsetPaths, SDKRootPath, ToolsetPaths, IncludeSearchPaths})
	assert.Equal(t, []string{"sdkRootPath", "includeSearchPaths", "toolsetPaths"}, names(got))
}
