package sshutil

// SSHClient defines the interface for SSH command execution.
// Both the real Client and test mocks satisfy this interface, so code
// that runs remote commands can be tested without a live connection.
type SSHClient interface {
	// Exec runs a command and returns stdout, stderr, and exit code.
	// Exit code is -1 if the command couldn't be executed at all.
	// A non-zero exit code with nil error means the command ran but failed.
	Exec(cmd string) (stdout, stderr []byte, exitCode int, err error)

	// Close closes the SSH connection.
	Close() error

	// GetHost returns the original host/alias used to connect.
	GetHost() string
}

// Dialer opens SSH connections. The package-level Dial is the real
// implementation; tests substitute a function returning mocks.
type Dialer func(host string) (SSHClient, error)
