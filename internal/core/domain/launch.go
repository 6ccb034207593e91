package domain

import "time"

// LaunchStatus is the lifecycle state of a spawned application process.
type LaunchStatus string

const (
	// LaunchRunning indicates the process is alive.
	LaunchRunning LaunchStatus = "Running"
	// LaunchExited indicates the process terminated; ExitCode holds its code.
	LaunchExited LaunchStatus = "Exited"
	// LaunchFailed indicates the process could not be started or its exit
	// could not be observed.
	LaunchFailed LaunchStatus = "Failed"
)

// LaunchHandle is a read-only snapshot of one launched process. The launch
// manager updates its own record as the process transitions and hands out
// fresh snapshots; handles already given to callers never change.
type LaunchHandle struct {
	// ID is a session-unique launch sequence number.
	ID int

	// ProcessID is the operating system PID.
	ProcessID int

	// Key is the request whose resolved environment the process runs in.
	Key RequestKey

	// Command is the argv the process was started with.
	Command []string

	StartedAt  time.Time
	FinishedAt time.Time

	Status   LaunchStatus
	ExitCode int

	// Error describes the failure when Status is LaunchFailed.
	Error string
}
