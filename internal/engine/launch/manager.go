// Package launch implements the launch manager: it builds process-launch
// parameters from a resolved environment, spawns the target application,
// and tracks the process lifecycle without blocking the caller.
package launch

import (
	"context"
	"os"
	"slices"
	"sync"
	"time"

	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager spawns applications inside resolved environments and tracks the
// resulting processes. Launches are independent of each other; the only
// shared state is the handle list.
type Manager struct {
	runner ports.Runner
	sink   ports.EventSink
	logger ports.Logger

	// inheritEnv names the launcher variables allowed into the child's
	// base environment.
	inheritEnv []string

	mu      sync.Mutex
	nextID  int
	records map[int]*domain.LaunchHandle

	wg sync.WaitGroup
}

// NewManager creates a Manager. inheritEnv is the allow-list of launcher
// environment variables launched processes start from.
func NewManager(runner ports.Runner, sink ports.EventSink, logger ports.Logger, inheritEnv []string) *Manager {
	return &Manager{
		runner:     runner,
		sink:       sink,
		logger:     logger,
		inheritEnv: slices.Clone(inheritEnv),
		records:    make(map[int]*domain.LaunchHandle),
	}
}

// Launch starts command inside env and returns a handle with status
// Running. It does not wait for the process to exit; a watcher updates the
// handle and emits a launch event on termination.
func (m *Manager) Launch(ctx context.Context, env *domain.ResolvedEnvironment, command []string) (domain.LaunchHandle, error) {
	if len(command) == 0 || command[0] == "" {
		return domain.LaunchHandle{}, zerr.With(domain.ErrInvalidCommand, "key", env.Key.String())
	}

	// The key's env overrides (profile and application level) win over the
	// resolver's own variables.
	resolved := make(map[string]string, len(env.EnvVars))
	for name, value := range env.EnvVars {
		resolved[name] = value
	}
	for name, value := range env.Key.Overrides() {
		resolved[name] = value
	}

	spec := ports.ProcessSpec{
		Command: command,
		Env:     overlayEnvironment(baseEnvironment(os.Environ(), m.inheritEnv), resolved),
	}

	proc, err := m.runner.Start(ctx, spec)
	if err != nil {
		spawnErr := zerr.With(domain.ErrSpawnFailed, "command", command[0])
		spawnErr = zerr.With(spawnErr, "cause", err.Error())
		return domain.LaunchHandle{}, zerr.With(spawnErr, "key", env.Key.String())
	}

	m.mu.Lock()
	m.nextID++
	handle := &domain.LaunchHandle{
		ID:        m.nextID,
		ProcessID: proc.PID(),
		Key:       env.Key,
		Command:   slices.Clone(command),
		StartedAt: time.Now(),
		Status:    domain.LaunchRunning,
	}
	m.records[handle.ID] = handle
	snapshot := *handle
	m.mu.Unlock()

	m.sink.LaunchChanged(domain.LaunchEvent{Handle: snapshot, At: snapshot.StartedAt})

	m.wg.Add(1)
	go m.watch(handle.ID, proc)

	return snapshot, nil
}

// Handles returns snapshots of every launch this session, ordered by ID.
func (m *Manager) Handles() []domain.LaunchHandle {
	m.mu.Lock()
	defer m.mu.Unlock()

	handles := make([]domain.LaunchHandle, 0, len(m.records))
	for _, record := range m.records {
		handles = append(handles, *record)
	}
	slices.SortFunc(handles, func(a, b domain.LaunchHandle) int { return a.ID - b.ID })
	return handles
}

// Handle returns a snapshot of one launch by ID.
func (m *Manager) Handle(id int) (domain.LaunchHandle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok {
		return domain.LaunchHandle{}, false
	}
	return *record, true
}

// Wait blocks until every watcher has finished. Intended for shutdown and
// tests; normal callers never wait on launches.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// watch observes one process until exit, then updates the record and emits
// the termination event. The watcher goroutine is the tracking resource for
// the handle; it is released here, deterministically, on termination.
func (m *Manager) watch(id int, proc ports.Process) {
	defer m.wg.Done()

	code, err := proc.Wait()

	m.mu.Lock()
	record := m.records[id]
	record.FinishedAt = time.Now()
	if err != nil {
		record.Status = domain.LaunchFailed
		record.Error = err.Error()
	} else {
		record.Status = domain.LaunchExited
		record.ExitCode = code
	}
	snapshot := *record
	m.mu.Unlock()

	if err != nil {
		m.logger.Error(zerr.With(zerr.Wrap(err, "process exit not observed"), "pid", snapshot.ProcessID))
	}

	m.sink.LaunchChanged(domain.LaunchEvent{Handle: snapshot, At: snapshot.FinishedAt})
}
