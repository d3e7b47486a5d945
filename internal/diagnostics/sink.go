// Package diagnostics carries user-facing outcome messages from commands to
// the terminal. A command reports through a Sink so tests can record what
// would have been printed.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Severity classifies a diagnostic message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns the lowercase label printed before a message.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Sink receives diagnostic messages.
type Sink interface {
	Info(msg string)
	Warning(msg string)
}

// Terminal writes info messages to Out and warnings to Err.
type Terminal struct {
	Out io.Writer
	Err io.Writer
}

var (
	infoMark    = color.New(color.FgGreen).SprintFunc()
	warningMark = color.New(color.FgYellow).SprintFunc()
)

// NewTerminal returns a Terminal sink writing to the given streams.
func NewTerminal(out, errOut io.Writer) *Terminal {
	return &Terminal{Out: out, Err: errOut}
}

// Info prints msg with a green check mark.
func (t *Terminal) Info(msg string) {
	fmt.Fprintf(t.Out, "%s %s\n", infoMark("✓"), msg)
}

// Warning prints msg with a yellow warning sign.
func (t *Terminal) Warning(msg string) {
	fmt.Fprintf(t.Err, "%s %s: %s\n", warningMark("⚠"), SeverityWarning, msg)
}

// Message is one recorded diagnostic.
type Message struct {
	Severity Severity
	Text     string
}

// Recorder keeps every message it receives, in order.
type Recorder struct {
	Messages []Message
}

func (r *Recorder) Info(msg string) {
	r.Messages = append(r.Messages, Message{Severity: SeverityInfo, Text: msg})
}

func (r *Recorder) Warning(msg string) {
	r.Messages = append(r.Messages, Message{Severity: SeverityWarning, Text: msg})
}
