package ports

import "context"

// ProcessSpec describes a process to start: the argv, the fully constructed
// environment in "KEY=VALUE" form, and an optional working directory.
type ProcessSpec struct {
	Command []string
	Env     []string
	Dir     string
}

// Process is a started process being tracked by the launch manager.
type Process interface {
	// PID returns the operating system process ID.
	PID() int

	// Wait blocks until the process exits and returns its exit code.
	// A non-nil error means the exit could not be observed.
	Wait() (int, error)

	// Kill terminates the process.
	Kill() error
}

// Runner starts processes. Start returns as soon as the process is spawned;
// it never waits for exit.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	Start(ctx context.Context, spec ProcessSpec) (Process, error)
}
