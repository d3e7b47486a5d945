package destination

import (
	"errors"
	"testing"

	"github.com/ariel-frischer/pkgctl/internal/diagnostics"
	clierrors "github.com/ariel-frischer/pkgctl/internal/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfigurator(t *testing.T) (*Configurator, *FileStore, *diagnostics.Recorder) {
	t.Helper()
	store := NewFileStore(t.TempDir())
	rec := &diagnostics.Recorder{}
	return &Configurator{Store: store, Diagnostics: rec}, store, rec
}

func TestConfigurator_ResetSingleProperty(t *testing.T) {
	t.Parallel()

	for _, p := range Properties {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			t.Parallel()

			c, store, rec := newTestConfigurator(t)
			require.NoError(t, store.Update(testKey, fullRecord()))

			outcome, err := c.Reset(testKey, []Property{p})
			require.NoError(t, err)
			assert.Equal(t, []string{p.Name}, outcome.Properties)
			assert.True(t, outcome.Found)

			want := fullRecord()
			p.Clear(&want)
			got, found, err := store.Load(testKey)
			require.NoError(t, err)
			require.True(t, found)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}

			require.Len(t, rec.Messages, 1)
			assert.Equal(t, diagnostics.SeverityInfo, rec.Messages[0].Severity)
			assert.Contains(t, rec.Messages[0].Text, p.Name)
		})
	}
}

func TestConfigurator_ResetScenario(t *testing.T) {
	t.Parallel()

	c, store, rec := newTestConfigurator(t)
	require.NoError(t, store.Update(testKey, PathOverrides{
		SDKRootPath:  StringPtr("/a"),
		ToolsetPaths: ListPtr("/t"),
	}))

	outcome, err := c.Reset(testKey, []Property{SDKRootPath})
	require.NoError(t, err)
	assert.Equal(t, []string{"sdkRootPath"}, outcome.Properties)

	got, _, err := store.Load(testKey)
	require.NoError(t, err)
	assert.True(t, PathOverrides{ToolsetPaths: ListPtr("/t")}.Equal(got))
	assert.Equal(t, []diagnostics.Message{{
		Severity: diagnostics.SeverityInfo,
		Text:     "These properties of destination `ubuntu-jammy` for target triple `aarch64-unknown-linux-gnu` were successfully reset: sdkRootPath.",
	}}, rec.Messages)
}

func TestConfigurator_ResetReportsDeclarationOrder(t *testing.T) {
	t.Parallel()

	c, store, _ := newTestConfigurator(t)
	require.NoError(t, store.Update(testKey, fullRecord()))

	outcome, err := c.Reset(testKey, []Property{ToolsetPaths, SwiftStaticResourcesPath, SDKRootPath})
	require.NoError(t, err)
	assert.Equal(t, []string{"sdkRootPath", "swiftStaticResourcesPath", "toolsetPaths"}, outcome.Properties)
}

func TestConfigurator_ResetAllFieldsRemovesRecord(t *testing.T) {
	t.Parallel()

	c, store, _ := newTestConfigurator(t)
	require.NoError(t, store.Update(testKey, fullRecord()))

	_, err := c.Reset(testKey, Properties)
	require.NoError(t, err)

	exists, err := store.Exists(testKey)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestConfigurator_ResetSelectedWithoutRecord(t *testing.T) {
	t.Parallel()

	c, store, rec := newTestConfigurator(t)

	outcome, err := c.Reset(testKey, []Property{LibrarySearchPaths})
	require.NoError(t, err)
	assert.False(t, outcome.Found)
	assert.Equal(t, []string{"librarySearchPaths"}, outcome.Properties)

	exists, err := store.Exists(testKey)
	require.NoError(t, err)
	assert.False(t, exists)

	require.Len(t, rec.Messages, 1)
	assert.Equal(t, diagnostics.SeverityInfo, rec.Messages[0].Severity)
}

func TestConfigurator_ResetAll(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		seed         bool
		wantFound    bool
		wantSeverity diagnostics.Severity
		wantText     string
	}{
		"existing record": {
			seed:         true,
			wantFound:    true,
			wantSeverity: diagnostics.SeverityInfo,
			wantText:     "All configuration properties of destination `ubuntu-jammy` for target triple `aarch64-unknown-linux-gnu` were successfully reset.",
		},
		"no record": {
			seed:         false,
			wantFound:    false,
			wantSeverity: diagnostics.SeverityWarning,
			wantText:     "No configuration for destination `ubuntu-jammy` with target triple `aarch64-unknown-linux-gnu` found.",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, store, rec := newTestConfigurator(t)
			other := Key{DestinationID: "other", TargetTriple: testKey.TargetTriple}
			require.NoError(t, store.Update(other, fullRecord()))
			if tt.seed {
				require.NoError(t, store.Update(testKey, fullRecord()))
			}

			outcome, err := c.Reset(testKey, nil)
			require.NoError(t, err)
			assert.True(t, outcome.Full)
			assert.Equal(t, tt.wantFound, outcome.Found)
			assert.Empty(t, outcome.Properties)

			_, found, err := store.Load(testKey)
			require.NoError(t, err)
			assert.False(t, found)

			// Other keys are untouched.
			got, found, err := store.Load(other)
			require.NoError(t, err)
			assert.True(t, found)
			assert.True(t, fullRecord().Equal(got))

			assert.Equal(t, []diagnostics.Message{{Severity: tt.wantSeverity, Text: tt.wantText}}, rec.Messages)
		})
	}
}

func TestConfigurator_ResetAllIsIdempotent(t *testing.T) {
	t.Parallel()

	c, store, rec := newTestConfigurator(t)
	require.NoError(t, store.Update(testKey, fullRecord()))

	_, err := c.Reset(testKey, nil)
	require.NoError(t, err)
	outcome, err := c.Reset(testKey, nil)
	require.NoError(t, err)

	assert.False(t, outcome.Found)
	require.Len(t, rec.Messages, 2)
	assert.Equal(t, diagnostics.SeverityWarning, rec.Messages[1].Severity)
}

func TestConfigurator_Update(t *testing.T) {
	t.Parallel()

	c, store, rec := newTestConfigurator(t)
	require.NoError(t, store.Update(testKey, PathOverrides{SDKRootPath: StringPtr("/old")}))

	outcome, err := c.Update(testKey, []Assignment{
		{Property: ToolsetPaths, Values: []string{"/t1", "/t2"}},
		{Property: SwiftResourcesPath, Values: []string{"/res"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"swiftResourcesPath", "toolsetPaths"}, outcome.Properties)

	got, _, err := store.Load(testKey)
	require.NoError(t, err)
	want := PathOverrides{
		SDKRootPath:        StringPtr("/old"),
		SwiftResourcesPath: StringPtr("/res"),
		ToolsetPaths:       ListPtr("/t1", "/t2"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, rec.Messages, 1)
	assert.Contains(t, rec.Messages[0].Text, "successfully updated: swiftResourcesPath, toolsetPaths.")
}

func TestConfigurator_UpdateWithoutAssignments(t *testing.T) {
	t.Parallel()

	c, _, rec := newTestConfigurator(t)

	_, err := c.Update(testKey, nil)
	require.Error(t, err)
	assert.Equal(t, clierrors.Argument, clierrors.CategoryOf(err))
	assert.Empty(t, rec.Messages)
}

func TestConfigurator_InvalidKey(t *testing.T) {
	t.Parallel()

	c, _, rec := newTestConfigurator(t)

	tests := map[string]Key{
		"empty destination": {DestinationID: "", TargetTriple: "x"},
		"empty triple":      {DestinationID: "d", TargetTriple: ""},
		"current dir":       {DestinationID: ".", TargetTriple: "x"},
		"parent dir":        {DestinationID: "..", TargetTriple: "x"},
	}

	for name, key := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.Reset(key, nil)
			require.Error(t, err)
			assert.Equal(t, clierrors.Argument, clierrors.CategoryOf(err))

			_, err = c.Show(key)
			require.Error(t, err)
			assert.Equal(t, clierrors.Argument, clierrors.CategoryOf(err))
		})
	}
	assert.Empty(t, rec.Messages)
}

type failingStore struct {
	err error
}

func (s failingStore) Load(Key) (PathOverrides, bool, error) { return PathOverrides{}, false, s.err }
func (s failingStore) Update(Key, PathOverrides) error       { return s.err }
func (s failingStore) ResetAll(Key) (bool, error)            { return false, s.err }
func (s failingStore) Exists(Key) (bool, error)              { return false, s.err }

func TestConfigurator_PersistenceFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk unplugged")

	tests := map[string]func(c *Configurator) error{
		"full reset": func(c *Configurator) error {
			_, err := c.Reset(testKey, nil)
			return err
		},
		"selective reset": func(c *Configurator) error {
			_, err := c.Reset(testKey, []Property{SDKRootPath})
			return err
		},
		"update": func(c *Configurator) error {
			_, err := c.Update(testKey, []Assignment{{Property: SDKRootPath, Values: []string{"/a"}}})
			return err
		},
	}

	for name, run := range tests {
		run := run
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := &diagnostics.Recorder{}
			c := &Configurator{Store: failingStore{err: cause}, Diagnostics: rec}

			err := run(c)
			require.Error(t, err)
			assert.ErrorIs(t, err, cause)
			assert.Equal(t, clierrors.Persistence, clierrors.CategoryOf(err))
			assert.Empty(t, rec.Messages)
		})
	}
}
