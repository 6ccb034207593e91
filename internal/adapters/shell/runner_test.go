package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/park/internal/adapters/shell"
	"go.trai.ch/park/internal/core/ports"
)

// captureLogger records child output forwarded to the logger.
type captureLogger struct {
	mu    sync.Mutex
	info  []string
	warns []string
}

func (l *captureLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info = append(l.info, msg)
}

func (l *captureLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *captureLogger) Error(error) {}

func (l *captureLogger) infoLines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.info...)
}

func (l *captureLogger) warnLines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warns...)
}

func TestRunner_StartAndWait(t *testing.T) {
	runner := shell.NewRunner(&captureLogger{})

	proc, err := runner.Start(context.Background(), ports.ProcessSpec{
		Command: []string{"/bin/sh", "-c", "exit 0"},
		Env:     []string{"PATH=/usr/bin:/bin"},
	})
	require.NoError(t, err)
	assert.Positive(t, proc.PID())

	code, err := proc.Wait()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRunner_NonZeroExit(t *testing.T) {
	runner := shell.NewRunner(&captureLogger{})

	proc, err := runner.Start(context.Background(), ports.ProcessSpec{
		Command: []string{"/bin/sh", "-c", "exit 3"},
		Env:     []string{"PATH=/usr/bin:/bin"},
	})
	require.NoError(t, err)

	code, err := proc.Wait()
	require.NoError(t, err, "a non-zero exit is a result, not an error")
	assert.Equal(t, 3, code)
}

func TestRunner_EnvIsolation(t *testing.T) {
	logger := &captureLogger{}
	runner := shell.NewRunner(logger)

	t.Setenv("LAUNCHER_ONLY", "leaked")
	proc, err := runner.Start(context.Background(), ports.ProcessSpec{
		Command: []string{"/bin/sh", "-c", "echo from-spec=$FROM_SPEC launcher=$LAUNCHER_ONLY"},
		Env:     []string{"PATH=/usr/bin:/bin", "FROM_SPEC=yes"},
	})
	require.NoError(t, err)
	_, err = proc.Wait()
	require.NoError(t, err)

	assert.Contains(t, logger.infoLines(), "from-spec=yes launcher=")
}

func TestRunner_StderrGoesToWarn(t *testing.T) {
	logger := &captureLogger{}
	runner := shell.NewRunner(logger)

	proc, err := runner.Start(context.Background(), ports.ProcessSpec{
		Command: []string{"/bin/sh", "-c", "echo oops >&2"},
		Env:     []string{"PATH=/usr/bin:/bin"},
	})
	require.NoError(t, err)
	_, err = proc.Wait()
	require.NoError(t, err)

	assert.Contains(t, logger.warnLines(), "oops")
}

func TestRunner_ResolvesAgainstSpecPath(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "hello.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho hello\n"), 0o700)) //nolint:gosec

	logger := &captureLogger{}
	runner := shell.NewRunner(logger)

	// The command name is bare; it must resolve against the constructed
	// environment's PATH, not the launcher's.
	proc, err := runner.Start(context.Background(), ports.ProcessSpec{
		Command: []string{"hello.sh"},
		Env:     []string{"PATH=" + dir},
	})
	require.NoError(t, err)
	_, err = proc.Wait()
	require.NoError(t, err)

	assert.Contains(t, logger.infoLines(), "hello")
}

func TestRunner_StartFailure(t *testing.T) {
	runner := shell.NewRunner(&captureLogger{})

	_, err := runner.Start(context.Background(), ports.ProcessSpec{
		Command: []string{"/no/such/binary"},
		Env:     []string{"PATH=/usr/bin:/bin"},
	})
	require.Error(t, err)
}

func TestRunner_EmptyCommand(t *testing.T) {
	runner := shell.NewRunner(&captureLogger{})
	_, err := runner.Start(context.Background(), ports.ProcessSpec{})
	require.Error(t, err)
}

func TestRunner_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	logger := &captureLogger{}
	runner := shell.NewRunner(logger)

	proc, err := runner.Start(context.Background(), ports.ProcessSpec{
		Command: []string{"/bin/sh", "-c", "pwd"},
		Env:     []string{"PATH=/usr/bin:/bin"},
		Dir:     dir,
	})
	require.NoError(t, err)
	_, err = proc.Wait()
	require.NoError(t, err)

	lines := logger.infoLines()
	require.NotEmpty(t, lines)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, lines[len(lines)-1])
}

func TestRunner_Kill(t *testing.T) {
	runner := shell.NewRunner(&captureLogger{})
	proc, err := runner.Start(context.Background(), ports.ProcessSpec{
		Command: []string{"/bin/sh", "-c", "sleep 60"},
		Env:     []string{"PATH=/usr/bin:/bin"},
	})
	require.NoError(t, err)

	require.NoError(t, proc.Kill())
	_, _ = proc.Wait()
}
