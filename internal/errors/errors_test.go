package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrProbe,
		ErrSession,
		ErrPower,
		ErrDiag,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in fleet.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "probe error",
			code:       ErrProbe,
			message:    "Reachability query failed",
			suggestion: "Status will refresh on the next poll",
		},
		{
			name:       "session error",
			code:       ErrSession,
			message:    "Couldn't open a terminal session",
			suggestion: "Try connecting manually: ssh <host>",
		},
		{
			name:       "power error",
			code:       ErrPower,
			message:    "Shutdown command failed",
			suggestion: "Check the device is reachable and sudo is allowed",
		},
		{
			name:       "diag error",
			code:       ErrDiag,
			message:    "Diagnostic sweep failed with exit code 1",
			suggestion: "Check the health-check stack is installed on the device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "Couldn't reach the device")

	require.NotNil(t, err)
	assert.Equal(t, ErrSession, err.Code)
	assert.Equal(t, "Couldn't reach the device", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := WrapWithCode(cause, ErrConfig, "Invalid config format", "Check the YAML syntax")

	require.NotNil(t, err)
	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Invalid config format", err.Message)
	assert.Equal(t, "Check the YAML syntax", err.Suggestion)
	assert.Equal(t, cause, err.Cause)
}

func TestError_Format(t *testing.T) {
	err := WrapWithCode(
		errors.New("exit status 255"),
		ErrDiag,
		"Diagnostic sweep failed",
		"Run the sweep manually to see the full output",
	)

	msg := err.Error()

	// Three-part format: what, why, how
	assert.True(t, strings.HasPrefix(msg, "✗ Diagnostic sweep failed"))
	assert.Contains(t, msg, "exit status 255")
	assert.Contains(t, msg, "Run the sweep manually")
}

func TestError_FormatWithoutCause(t *testing.T) {
	err := New(ErrPower, "Shutdown command failed", "")

	msg := err.Error()
	assert.Contains(t, msg, "✗ Shutdown command failed")
	assert.NotContains(t, msg, "\n\n\n")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, "wrapped")

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	probeErr := New(ErrProbe, "probe failed", "")
	sessionErr := New(ErrSession, "session failed", "")
	plainErr := errors.New("plain")

	assert.True(t, IsCode(probeErr, ErrProbe))
	assert.False(t, IsCode(probeErr, ErrSession))
	assert.True(t, IsCode(sessionErr, ErrSession))
	assert.False(t, IsCode(plainErr, ErrProbe))
	assert.False(t, IsCode(nil, ErrProbe))
}

func TestIsCode_WrappedChain(t *testing.T) {
	inner := New(ErrConfig, "bad config", "")
	outer := Wrap(inner, "startup failed")

	// errors.As walks the chain; the outer SESSION code wins
	assert.True(t, IsCode(outer, ErrSession))
}
