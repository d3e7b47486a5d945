// Package lifecycle wraps CLI command execution with timing. Each wrapper
// captures the start time, runs the command body, and reports the outcome
// to an Observer.
package lifecycle

import (
	"time"

	xlog "github.com/ariel-frischer/pkgctl/internal/log"
)

// Observer is told about every finished command.
type Observer interface {
	// OnCommandComplete is called when a CLI command finishes execution.
	//   - name: the command path (e.g., "config reset")
	//   - success: true if the command returned no error
	//   - duration: how long the command body ran
	OnCommandComplete(name string, success bool, duration time.Duration)
}

// Run executes fn and reports its outcome to o. A nil o only runs fn.
func Run(o Observer, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	if o != nil {
		o.OnCommandComplete(name, err == nil, time.Since(start))
	}
	return err
}

// LogObserver writes a debug record per command to the pkgctl logger.
type LogObserver struct{}

func (LogObserver) OnCommandComplete(name string, success bool, duration time.Duration) {
	logger := xlog.WithComponent("lifecycle")
	logger.Debug().
		Str("command", name).
		Bool("success", success).
		Dur("duration", duration).
		Msg("command complete")
}
