// Package output provides terminal output formatting utilities for pkgctl CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	cCyan  = color.New(color.FgCyan).SprintFunc()
	cDim   = color.New(color.Faint).SprintFunc()
	cBold  = color.New(color.Bold).SprintFunc()
	cGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// PrintSectionHeader prints a dim rule with a cyan title, e.g. "---------- Stored ----------".
func PrintSectionHeader(out io.Writer, title string) {
	line := strings.Repeat("-", 10)
	fmt.Fprintf(out, "%s %s %s\n", cDim(line), cCyan(title), cDim(line))
}

// PrintField prints an indented "label: value" line with the label padded to width.
func PrintField(out io.Writer, label string, width int, value string) {
	fmt.Fprintf(out, "  %s %s\n", cBold(fmt.Sprintf("%-*s", width+1, label+":")), value)
}

// Dim renders s faint, for placeholder values such as "(not set)".
func Dim(s string) string {
	return cDim(s)
}

// PrintSuccess prints a green checkmark followed by message.
func PrintSuccess(out io.Writer, message string) {
	fmt.Fprintf(out, "%s %s\n", cGreen("✓"), message)
}
