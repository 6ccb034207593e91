// Package shell implements the process runner on os/exec.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/park/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec. The child's environment is
// exactly spec.Env; nothing of the launcher's environment is implied.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Start spawns the process described by spec and returns without waiting
// for it.
func (r *Runner) Start(ctx context.Context, spec ports.ProcessSpec) (ports.Process, error) {
	if len(spec.Command) == 0 {
		return nil, zerr.New("empty command")
	}

	name := spec.Command[0]
	args := spec.Command[1:]

	// Resolve the executable against the constructed environment's PATH,
	// not the launcher's own.
	executable := name
	if !filepath.IsAbs(name) {
		if found, err := lookPath(name, spec.Env); err == nil {
			executable = found
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // command comes from the catalog
	// Preserve the name as invoked; CommandContext sets Args[0] to the
	// resolved path.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Env = spec.Env
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	cmd.Stdout = &logWriter{logger: r.logger, stderr: false}
	cmd.Stderr = &logWriter{logger: r.logger, stderr: true}

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to start process"), "command", name)
	}
	return &process{cmd: cmd}, nil
}

// process wraps a started exec.Cmd as a ports.Process.
type process struct {
	cmd *exec.Cmd
}

func (p *process) PID() int {
	return p.cmd.Process.Pid
}

// Wait blocks until exit. A non-zero exit code is not an error here; the
// launch manager records the code either way.
func (p *process) Wait() (int, error) {
	err := p.cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.Wrap(err, "wait failed")
	}
	return 0, nil
}

func (p *process) Kill() error {
	return p.cmd.Process.Kill()
}

// logWriter forwards child output lines to the logger.
type logWriter struct {
	logger ports.Logger
	stderr bool
}

func (w *logWriter) Write(p []byte) (int, error) {
	for line := range strings.Lines(strings.TrimSuffix(string(p), "\n")) {
		line = strings.TrimSuffix(line, "\n")
		if w.stderr {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}

// lookPath searches the PATH of the given environment for an executable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, kv := range env {
		if value, ok := strings.CutPrefix(kv, "PATH="); ok {
			path = value
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	if mode := info.Mode(); !mode.IsDir() && mode&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
