// Package testutil provides test utilities and helpers for pkgctl tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
)

// HelperProcessConfig configures the behavior of TestHelperProcess.
type HelperProcessConfig struct {
	// ExitCode is the exit code to return (default 0).
	ExitCode int `json:"exit_code"`
	// Stdout is the content to write to stdout.
	Stdout string `json:"stdout"`
	// Stderr is the content to write to stderr.
	Stderr string `json:"stderr"`
	// PrintEnv lists variables whose values are echoed to stdout, one per line,
	// as NAME=value or "NAME unset".
	PrintEnv []string `json:"print_env,omitempty"`
}

const (
	// EnvWantHelperProcess signals that the test binary should run as a helper process.
	EnvWantHelperProcess = "GO_WANT_HELPER_PROCESS"
	// EnvHelperProcessConfig contains JSON-encoded HelperProcessConfig.
	EnvHelperProcessConfig = "GO_HELPER_PROCESS_CONFIG"
)

// TestHelperProcess implements the helper process pattern. When the test
// binary runs with GO_WANT_HELPER_PROCESS=1 it behaves as a fake product and
// exits without returning; otherwise it returns immediately.
//
// Usage in test file:
//
//	func TestHelperProcess(t *testing.T) {
//	    testutil.TestHelperProcess(t)
//	}
func TestHelperProcess(t *testing.T) {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return
	}

	runHelperProcess(parseHelperConfig())
}

func parseHelperConfig() HelperProcessConfig {
	config := HelperProcessConfig{}
	if raw := os.Getenv(EnvHelperProcessConfig); raw != "" {
		// Defaults on parse failure
		_ = json.Unmarshal([]byte(raw), &config)
	}
	return config
}

// runHelperProcess writes the configured output and always exits.
func runHelperProcess(config HelperProcessConfig) {
	for _, name := range config.PrintEnv {
		if value, ok := os.LookupEnv(name); ok {
			fmt.Fprintf(os.Stdout, "%s=%s\n", name, value)
		} else {
			fmt.Fprintf(os.Stdout, "%s unset\n", name)
		}
	}
	if config.Stdout != "" {
		fmt.Fprint(os.Stdout, config.Stdout)
	}
	if config.Stderr != "" {
		fmt.Fprint(os.Stderr, config.Stderr)
	}

	os.Exit(config.ExitCode)
}

// HelperEnv returns the environment overrides that make a test binary,
// launched through product.Runner, act as a helper process.
func HelperEnv(t *testing.T, config HelperProcessConfig) map[string]string {
	t.Helper()

	raw, err := json.Marshal(config)
	if err != nil {
		t.Fatalf("encoding helper process config: %v", err)
	}
	return map[string]string{
		EnvWantHelperProcess:   "1",
		EnvHelperProcessConfig: string(raw),
	}
}
