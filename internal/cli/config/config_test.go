package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/pkgctl/internal/cli/shared"
	appconfig "github.com/ariel-frischer/pkgctl/internal/config"
	"github.com/ariel-frischer/pkgctl/internal/destination"
	clierrors "github.com/ariel-frischer/pkgctl/internal/errors"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = destination.Key{DestinationID: "ubuntu-jammy", TargetTriple: "aarch64-unknown-linux-gnu"}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type env struct {
	workDir         string
	destinationsDir string
	store           *destination.FileStore
}

func newEnv(t *testing.T) *env {
	t.Helper()
	root := t.TempDir()
	e := &env{
		workDir:         filepath.Join(root, "work"),
		destinationsDir: filepath.Join(root, "destinations"),
	}
	require.NoError(t, os.MkdirAll(e.workDir, 0o755))
	e.store = destination.NewFileStore(e.destinationsDir)
	return e
}

// run executes 'config <args>' and returns stdout, stderr and the error.
func (e *env) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	opts := &shared.RootOptions{
		Runtime: shared.Runtime{WorkDir: e.workDir},
		Config:  &appconfig.Configuration{DestinationsDir: e.destinationsDir},
	}
	cmd := NewConfigCommand(opts)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (e *env) seed(t *testing.T, o destination.PathOverrides) {
	t.Helper()
	require.NoError(t, e.store.Update(testKey, o))
}

func (e *env) load(t *testing.T) (destination.PathOverrides, bool) {
	t.Helper()
	o, found, err := e.store.Load(testKey)
	require.NoError(t, err)
	return o, found
}

func fullRecord() destination.PathOverrides {
	return destination.PathOverrides{
		SDKRootPath:              destination.StringPtr("/sdk"),
		SwiftResourcesPath:       destination.StringPtr("/res"),
		SwiftStaticResourcesPath: destination.StringPtr("/static"),
		IncludeSearchPaths:       destination.ListPtr("/inc"),
		LibrarySearchPaths:       destination.ListPtr("/lib"),
		ToolsetPaths:             destination.ListPtr("/t1.json", "/t2.json"),
	}
}

func TestReset(t *testing.T) {
	tests := map[string]struct {
		seed       *destination.PathOverrides
		flags      []string
		wantStdout string
		wantStderr string
		wantFound  bool
		want       destination.PathOverrides
	}{
		"full reset without a record warns": {
			wantStderr: "⚠ warning: No configuration for destination `ubuntu-jammy` with target triple `aarch64-unknown-linux-gnu` found.\n",
		},
		"full reset removes the record": {
			seed:       ptr(fullRecord()),
			wantStdout: "✓ All configuration properties of destination `ubuntu-jammy` for target triple `aarch64-unknown-linux-gnu` were successfully reset.\n",
		},
		"selective reset keeps other properties": {
			seed:       ptr(fullRecord()),
			flags:      []string{"--toolset-path", "--sdk-root-path"},
			wantStdout: "✓ These properties of destination `ubuntu-jammy` for target triple `aarch64-unknown-linux-gnu` were successfully reset: sdkRootPath, toolsetPaths.\n",
			wantFound:  true,
			want: destination.PathOverrides{
				SwiftResourcesPath:       destination.StringPtr("/res"),
				SwiftStaticResourcesPath: destination.StringPtr("/static"),
				IncludeSearchPaths:       destination.ListPtr("/inc"),
				LibrarySearchPaths:       destination.ListPtr("/lib"),
			},
		},
		"static resources flag clears only the static field": {
			seed:       ptr(fullRecord()),
			flags:      []string{"--swift-static-resources-path"},
			wantStdout: "✓ These properties of destination `ubuntu-jammy` for target triple `aarch64-unknown-linux-gnu` were successfully reset: swiftStaticResourcesPath.\n",
			wantFound:  true,
			want: func() destination.PathOverrides {
				o := fullRecord()
				o.SwiftStaticResourcesPath = nil
				return o
			}(),
		},
		"selective reset without a record reports the properties": {
			flags:      []string{"--library-search-path"},
			wantStdout: "✓ These properties of destination `ubuntu-jammy` for target triple `aarch64-unknown-linux-gnu` were successfully reset: librarySearchPaths.\n",
		},
		"resetting the last property removes the record": {
			seed:       &destination.PathOverrides{ToolsetPaths: destination.ListPtr()},
			flags:      []string{"--toolset-path"},
			wantStdout: "✓ These properties of destination `ubuntu-jammy` for target triple `aarch64-unknown-linux-gnu` were successfully reset: toolsetPaths.\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEnv(t)
			if tt.seed != nil {
				e.seed(t, *tt.seed)
			}

			args := append([]string{"reset", testKey.DestinationID, testKey.TargetTriple}, tt.flags...)
			stdout, stderr, err := e.run(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStdout, stdout)
			assert.Equal(t, tt.wantStderr, stderr)

			got, found := e.load(t)
			assert.Equal(t, tt.wantFound, found)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReset_PersistenceFailure(t *testing.T) {
	tests := map[string]struct {
		flags []string
	}{
		"selective reset on unreadable record": {flags: []string{"--sdk-root-path"}},
		"full reset on unremovable record":     {},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEnv(t)
			// A non-empty directory where the record file belongs.
			blocker := e.store.Path(testKey)
			require.NoError(t, os.MkdirAll(filepath.Join(blocker, "x"), 0o755))

			args := append([]string{"reset", testKey.DestinationID, testKey.TargetTriple}, tt.flags...)
			stdout, stderr, err := e.run(t, args...)
			require.Error(t, err)
			assert.Equal(t, clierrors.Persistence, clierrors.CategoryOf(err))
			assert.Equal(t, shared.ExitFailure, shared.ExitCode(err))
			assert.Empty(t, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestReset_WrongArgCount(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.run(t, "reset", testKey.DestinationID)
	require.Error(t, err)
	assert.Equal(t, shared.ExitInvalidArguments, shared.ExitCode(err))
}

func TestSet(t *testing.T) {
	e := newEnv(t)
	e.seed(t, destination.PathOverrides{LibrarySearchPaths: destination.ListPtr("/keep")})

	stdout, stderr, err := e.run(t, "set", testKey.DestinationID, testKey.TargetTriple,
		"--toolset-path", "a.json",
		"--sdk-root-path", "/first",
		"--toolset-path", "/abs/b.json",
		"--sdk-root-path", "sysroot",
	)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "✓ These properties of destination `ubuntu-jammy` for target triple `aarch64-unknown-linux-gnu` were successfully updated: sdkRootPath, toolsetPaths.\n", stdout)

	got, found := e.load(t)
	require.True(t, found)
	want := destination.PathOverrides{
		SDKRootPath:        destination.StringPtr(filepath.Join(e.workDir, "sysroot")),
		LibrarySearchPaths: destination.ListPtr("/keep"),
		ToolsetPaths:       destination.ListPtr(filepath.Join(e.workDir, "a.json"), "/abs/b.json"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_NoProperties(t *testing.T) {
	e := newEnv(t)

	stdout, stderr, err := e.run(t, "set", testKey.DestinationID, testKey.TargetTriple)
	require.Error(t, err)
	assert.Equal(t, shared.ExitInvalidArguments, shared.ExitCode(err))
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	_, found := e.load(t)
	assert.False(t, found)
}

func TestShow(t *testing.T) {
	e := newEnv(t)
	e.seed(t, destination.PathOverrides{
		SDKRootPath:  destination.StringPtr("/custom/sdk"),
		ToolsetPaths: destination.ListPtr(),
	})

	stdout, stderr, err := e.run(t, "show", testKey.DestinationID, testKey.TargetTriple)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	want := "---------- Overrides ----------\n" +
		"  sdkRootPath:              /custom/sdk\n" +
		"  swiftResourcesPath:       (not set)\n" +
		"  swiftStaticResourcesPath: (not set)\n" +
		"  includeSearchPaths:       (not set)\n" +
		"  librarySearchPaths:       (not set)\n" +
		"  toolsetPaths:             []\n"
	assert.Equal(t, want, stdout)
}

func TestShow_WithDescriptor(t *testing.T) {
	e := newEnv(t)
	descriptor := destination.DescriptorPath(e.destinationsDir, testKey.DestinationID)
	require.NoError(t, os.MkdirAll(filepath.Dir(descriptor), 0o755))
	require.NoError(t, os.WriteFile(descriptor, []byte(`{
  "schemaVersion": "1.0",
  "targetTriples": {
    "aarch64-unknown-linux-gnu": {"sdkRootPath": "/bundle/sdk", "toolsetPaths": ["/bundle/toolset.json"]}
  }
}`), 0o644))
	e.seed(t, destination.PathOverrides{SDKRootPath: destination.StringPtr("/custom/sdk")})

	stdout, _, err := e.run(t, "show", testKey.DestinationID, testKey.TargetTriple)
	require.NoError(t, err)
	assert.Contains(t, stdout, "---------- Effective ----------\n  sdkRootPath:              /custom/sdk\n")
	assert.Contains(t, stdout, "  toolsetPaths:             [/bundle/toolset.json]\n")
}

func TestShow_NoRecord(t *testing.T) {
	e := newEnv(t)

	stdout, stderr, err := e.run(t, "show", testKey.DestinationID, testKey.TargetTriple)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No configuration for destination `ubuntu-jammy` with target triple `aarch64-unknown-linux-gnu` found.")
}

func ptr(o destination.PathOverrides) *destination.PathOverrides {
	return &o
}
