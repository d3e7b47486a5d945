// Package progress reports multi-step work on the terminal: a spinner on
// interactive terminals, plain checkmark lines everywhere else.
package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what the output terminal can render.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// ProgressSymbols are the markers used for finished and failed steps.
type ProgressSymbols struct {
	Checkmark  string
	Failure    string
	SpinnerSet int // index into spinner.CharSets
}

// DetectTerminalCapabilities detects terminal features of out.
// Checks: isatty, NO_COLOR env, PKGCTL_ASCII env, terminal width.
// getenv is passed in so callers control which environment is consulted.
func DetectTerminalCapabilities(out *os.File, getenv func(string) string) TerminalCapabilities {
	isTTY := out != nil && term.IsTerminal(int(out.Fd()))

	noColor := getenv("NO_COLOR") != ""
	forceASCII := getenv("PKGCTL_ASCII") == "1"

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(out.Fd())); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
		Width:           width,
	}
}

// SelectSymbols returns the appropriate symbol set based on terminal capabilities.
// Unicode: ✓/✗ with braille spinner (set 14). ASCII: [OK]/[FAIL] with |/-\ spinner (set 9).
func SelectSymbols(caps TerminalCapabilities) ProgressSymbols {
	if caps.SupportsUnicode {
		return ProgressSymbols{
			Checkmark:  "✓",
			Failure:    "✗",
			SpinnerSet: 14, // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
		}
	}

	return ProgressSymbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		SpinnerSet: 9, // | / - \
	}
}
