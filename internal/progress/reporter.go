package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Reporter prints one line per finished step. On a TTY the running step is
// shown with a spinner until the next step starts or Done is called.
type Reporter struct {
	out     io.Writer
	caps    TerminalCapabilities
	symbols ProgressSymbols
	spin    *spinner.Spinner
	current string
}

// NewReporter returns a Reporter writing to out.
func NewReporter(out io.Writer, caps TerminalCapabilities) *Reporter {
	r := &Reporter{out: out, caps: caps, symbols: SelectSymbols(caps)}
	if caps.IsTTY {
		r.spin = spinner.New(spinner.CharSets[r.symbols.SpinnerSet], 100*time.Millisecond, spinner.WithWriter(out))
	}
	return r
}

// Step finishes the running step, if any, and starts msg.
func (r *Reporter) Step(msg string) {
	r.finish(r.symbols.Checkmark)
	r.current = msg
	if r.spin != nil {
		r.spin.Suffix = " " + msg
		r.spin.Start()
	}
}

// Done marks the running step as finished.
func (r *Reporter) Done() {
	r.finish(r.symbols.Checkmark)
}

// Fail marks the running step as failed.
func (r *Reporter) Fail() {
	r.finish(r.symbols.Failure)
}

func (r *Reporter) finish(symbol string) {
	if r.current == "" {
		return
	}
	if r.spin != nil {
		r.spin.Stop()
	}
	fmt.Fprintf(r.out, "%s %s\n", symbol, r.current)
	r.current = ""
}
