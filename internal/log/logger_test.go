package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigure_Levels(t *testing.T) {
	tests := map[string]struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		"debug shows everything": {level: "debug", wantDebug: true, wantWarn: true},
		"default hides debug":    {level: "", wantDebug: false, wantWarn: true},
		"unknown falls back":     {level: "loud", wantDebug: false, wantWarn: true},
		"error hides warn":       {level: "error", wantDebug: false, wantWarn: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			Configure(Config{Level: tt.level, Output: &buf, NoColor: true})
			t.Cleanup(func() { Configure(Config{Output: &bytes.Buffer{}}) })

			logger := WithComponent("store")
			logger.Debug().Msg("debug-line")
			logger.Warn().Msg("warn-line")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains([]byte(out), []byte("debug-line")))
			assert.Equal(t, tt.wantWarn, bytes.Contains([]byte(out), []byte("warn-line")))
			if tt.wantWarn {
				assert.Contains(t, out, "component=store")
			}
		})
	}
}
