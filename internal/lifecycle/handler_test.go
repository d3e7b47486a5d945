package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	names    []string
	success  []bool
	duration []time.Duration
}

func (r *recordingObserver) OnCommandComplete(name string, success bool, d time.Duration) {
	r.names = append(r.names, name)
	r.success = append(r.success, success)
	r.duration = append(r.duration, d)
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		fnErr       error
		wantSuccess bool
	}{
		"success": {wantSuccess: true},
		"failure": {fnErr: errors.New("boom")},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			obs := &recordingObserver{}

			err := Run(obs, "config reset", func() error { return tt.fnErr })

			assert.Equal(t, tt.fnErr, err)
			assert.Equal(t, []string{"config reset"}, obs.names)
			assert.Equal(t, []bool{tt.wantSuccess}, obs.success)
			assert.GreaterOrEqual(t, obs.duration[0], time.Duration(0))
		})
	}
}

func TestRun_NilObserver(t *testing.T) {
	t.Parallel()

	called := false
	err := Run(nil, "init", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}
