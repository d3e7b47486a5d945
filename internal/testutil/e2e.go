package testutil

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/ariel-frischer/pkgctl/internal/product"
)

// ProductName is the binary built from ./cmd/pkgctl.
const ProductName = "pkgctl"

var (
	// pkgctlBinDir caches the directory holding the built binary.
	pkgctlBinDir    string
	pkgctlBuildOnce sync.Once
	pkgctlBuildErr  error
)

// E2EEnv provides an isolated environment for end-to-end tests: its own HOME,
// user config directory, destinations directory and working directory. The
// binary is built once per test session and launched through product.Runner.
type E2EEnv struct {
	t               *testing.T
	tempDir         string
	workDir         string
	destinationsDir string
	runner          *product.Runner
}

// CommandResult captures the result of running a pkgctl command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv creates a new isolated E2E test environment.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	pkgctlBuildOnce.Do(func() {
		pkgctlBinDir, pkgctlBuildErr = buildPkgctl()
	})
	if pkgctlBuildErr != nil {
		t.Fatalf("building pkgctl: %v", pkgctlBuildErr)
	}

	tempDir := t.TempDir()
	env := &E2EEnv{
		t:               t,
		tempDir:         tempDir,
		workDir:         filepath.Join(tempDir, "work"),
		destinationsDir: filepath.Join(tempDir, "destinations"),
	}
	for _, dir := range []string{env.workDir, env.destinationsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}
	env.runner = product.NewRunner(product.NewLocator(pkgctlBinDir), env.isolatedEnv())

	return env
}

func buildPkgctl() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	binDir, err := os.MkdirTemp("", "pkgctl-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	name := ProductName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	cmd := exec.Command("go", "build", "-o", filepath.Join(binDir, name), "./cmd/pkgctl")
	cmd.Dir = repoRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(binDir)
		return "", fmt.Errorf("go build: %w\nOutput: %s", err, output)
	}

	return binDir, nil
}

// RemoveBuild deletes the binary built by NewE2EEnv. Call it from TestMain
// once m.Run returns.
func RemoveBuild() error {
	if pkgctlBinDir == "" {
		return nil
	}
	if err := os.RemoveAll(pkgctlBinDir); err != nil {
		return fmt.Errorf("removing pkgctl build dir: %w", err)
	}
	pkgctlBinDir = ""
	return nil
}

// isolatedEnv is the ambient environment handed to the runner. Only a few
// safe variables pass through from the test process.
func (e *E2EEnv) isolatedEnv() []string {
	env := []string{
		"HOME=" + e.tempDir,
		"XDG_CONFIG_HOME=" + filepath.Join(e.tempDir, ".config"),
		"APPDATA=" + filepath.Join(e.tempDir, "AppData"),
		"NO_COLOR=1",
	}

	safeVars := []string{"PATH", "TERM", "LANG", "LC_ALL", "TMPDIR", "TMP", "TEMP", "SYSTEMROOT"}
	for _, key := range safeVars {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}

	return env
}

// Run executes pkgctl with args from the work directory.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()
	return e.RunIn(e.workDir, args...)
}

// RunIn executes pkgctl with args from dir.
func (e *E2EEnv) RunIn(dir string, args ...string) CommandResult {
	e.t.Helper()

	result, err := e.runner.Execute(ProductName, args, product.Options{
		Dir: dir,
		Env: map[string]string{"PKGCTL_DESTINATIONS_DIR": e.destinationsDir},
	})

	out := CommandResult{
		ExitCode: result.ExitCode,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		Duration: result.Duration,
	}
	if err != nil {
		var exitErr *product.ExitError
		if !errors.As(err, &exitErr) {
			e.t.Fatalf("launching pkgctl: %v", err)
		}
	}
	return out
}

// TempDir returns the root temp directory for this environment.
func (e *E2EEnv) TempDir() string {
	return e.tempDir
}

// WorkDir returns the directory commands run in by default.
func (e *E2EEnv) WorkDir() string {
	return e.workDir
}

// DestinationsDir returns the isolated destinations directory.
func (e *E2EEnv) DestinationsDir() string {
	return e.destinationsDir
}

// Mkdir creates a directory under the work directory and returns its path.
func (e *E2EEnv) Mkdir(name string) string {
	e.t.Helper()

	dir := filepath.Join(e.workDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		e.t.Fatalf("creating %s: %v", dir, err)
	}
	return dir
}

// WriteFile writes content to a path relative to the temp root.
func (e *E2EEnv) WriteFile(rel, content string) string {
	e.t.Helper()

	path := filepath.Join(e.tempDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// FileExists reports whether a path relative to the temp root exists.
func (e *E2EEnv) FileExists(rel string) bool {
	_, err := os.Stat(filepath.Join(e.tempDir, rel))
	return err == nil
}
