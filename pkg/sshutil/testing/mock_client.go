// Package testing provides a scripted SSHClient for tests that run
// remote commands without a live connection.
package testing

import (
	"fmt"
	"time"
)

// ExecResponse is one scripted response for a command.
type ExecResponse struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// MockClient implements sshutil.SSHClient with scripted responses.
type MockClient struct {
	Host      string
	Responses map[string]ExecResponse // exact command -> response
	Default   *ExecResponse           // used when no exact match exists
	Commands  []string                // every command passed to Exec, in order
	Closed    bool
	Delay     time.Duration // simulated execution time per Exec call
}

// NewMockClient creates a mock for the given host alias.
func NewMockClient(host string) *MockClient {
	return &MockClient{
		Host:      host,
		Responses: make(map[string]ExecResponse),
	}
}

// Script registers a response for an exact command string.
func (m *MockClient) Script(cmd string, resp ExecResponse) {
	m.Responses[cmd] = resp
}

// Exec returns the scripted response for cmd.
func (m *MockClient) Exec(cmd string) (stdout, stderr []byte, exitCode int, err error) {
	m.Commands = append(m.Commands, cmd)

	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}

	if resp, ok := m.Responses[cmd]; ok {
		return []byte(resp.Stdout), []byte(resp.Stderr), resp.ExitCode, resp.Err
	}
	if m.Default != nil {
		return []byte(m.Default.Stdout), []byte(m.Default.Stderr), m.Default.ExitCode, m.Default.Err
	}
	return nil, nil, -1, fmt.Errorf("no scripted response for command: %s", cmd)
}

// Close marks the connection closed.
func (m *MockClient) Close() error {
	m.Closed = true
	return nil
}

// GetHost returns the host alias.
func (m *MockClient) GetHost() string {
	return m.Host
}
