package product

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"

	xlog "github.com/ariel-frischer/pkgctl/internal/log"
)

// ForcedUnsetEnv lists variables removed from the ambient environment before
// every launch so a user's own setup cannot leak into the child. Callers may
// still set them explicitly through Options.Env.
var ForcedUnsetEnv = []string{
	"SDKROOT",
	"PKGCTL_CONFIG",
	"PKGCTL_DESTINATIONS_DIR",
	"PKGCTL_LOG_LEVEL",
}

// Options configures one execution.
type Options struct {
	// PackagePath is passed as --package-path when set.
	PackagePath string
	// Dir is the child's working directory. Empty means the caller's.
	Dir string
	// Env overrides ambient variables.
	Env map[string]string
}

// Result captures the output of a finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// ExitError reports a non-zero exit and carries both output streams.
type ExitError struct {
	Product  string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s %s exited with code %d", e.Product, strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Runner launches products found by Locator. The ambient environment is
// passed in rather than read from the process.
type Runner struct {
	Locator *Locator
	Ambient []string
}

// NewRunner returns a Runner over the given locator and ambient environment.
func NewRunner(locator *Locator, ambient []string) *Runner {
	return &Runner{Locator: locator, Ambient: ambient}
}

// Execute runs product with args and blocks until it exits. There is no
// timeout: a hung child hangs the caller. A non-zero exit returns the Result
// together with an *ExitError.
func (r *Runner) Execute(product string, args []string, opts Options) (Result, error) {
	path, err := r.Locator.Path(product)
	if err != nil {
		return Result{}, err
	}

	fullArgs := args
	if opts.PackagePath != "" {
		fullArgs = append([]string{"--package-path", opts.PackagePath}, args...)
	}

	cmd := exec.Command(path, fullArgs...)
	cmd.Dir = opts.Dir
	cmd.Env = BuildEnv(r.Ambient, opts.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger := xlog.WithComponent("runner")
	logger.Debug().Str("product", product).Strs("args", fullArgs).Msg("executing")

	start := time.Now()
	runErr := cmd.Run()
	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return result, fmt.Errorf("launching %s: %w", product, runErr)
		}
		result.ExitCode = exitErr.ExitCode()
		logger.Debug().Str("product", product).Int("exit_code", result.ExitCode).Msg("failed")
		return result, &ExitError{
			Product:  product,
			Args:     fullArgs,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
		}
	}
	return result, nil
}

// BuildEnv merges overrides over ambient after dropping ForcedUnsetEnv.
// The result is sorted by name; the last ambient entry for a name wins.
func BuildEnv(ambient []string, overrides map[string]string) []string {
	env := make(map[string]string, len(ambient)+len(overrides))
	for _, kv := range ambient {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = value
	}
	for _, name := range ForcedUnsetEnv {
		delete(env, name)
	}
	for name, value := range overrides {
		env[name] = value
	}

	out := make([]string, 0, len(env))
	for name, value := range env {
		out = append(out, name+"="+value)
	}
	sort.Strings(out)
	return out
}
