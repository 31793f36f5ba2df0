package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{
			name:      "logs when FLEETDECK_DEBUG is set",
			envValue:  "1",
			expectLog: true,
		},
		{
			name:      "logs when FLEETDECK_DEBUG is any value",
			envValue:  "true",
			expectLog: true,
		},
		{
			name:      "does not log when FLEETDECK_DEBUG is empty",
			envValue:  "",
			expectLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log.SetOutput(&buf)
			defer log.SetOutput(os.Stderr)

			if tt.envValue != "" {
				t.Setenv("FLEETDECK_DEBUG", tt.envValue)
			} else {
				os.Unsetenv("FLEETDECK_DEBUG")
			}

			l := NewEnvLogger("[test]")
			l.Debug("test message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] test message arg")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := NewEnvLogger("[panel]")

	l.Info("polling %d devices", 3)
	assert.Contains(t, buf.String(), "[panel] polling 3 devices")

	buf.Reset()
	l.Error("probe failed: %v", "timeout")
	assert.Contains(t, buf.String(), "[panel] ERROR: probe failed: timeout")
}

func TestNoop(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := Noop()
	l.Debug("x")
	l.Info("x")
	l.Error("x")

	assert.Empty(t, buf.String())
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Info("status map updated: %d entries", 4)
	l.Error("batch probe failed")

	assert.Len(t, l.Messages, 2)
	assert.Equal(t, "info", l.Messages[0].Level)
	assert.Equal(t, "status map updated: 4 entries", l.Messages[0].Message)

	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("debug"))

	l.Clear()
	assert.Empty(t, l.Messages)
}
