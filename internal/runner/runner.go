// Package runner executes the external Windows tools planswitch depends on
// (powercfg, chcp, wmic, powershell).
//
// All process spawning goes through the Runner interface so that every
// component above it can be driven by scripted output in tests.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// maxStderrBytes caps the amount of stderr quoted in an error.
const maxStderrBytes = 4 * 1024

// waitDelay bounds how long Output waits for stdout and stderr to close
// after the context kills the child. Descendants that escaped the kill may
// still hold the pipes open.
const waitDelay = 500 * time.Millisecond

var (
	// ErrNotFound indicates the executable does not exist on this machine.
	ErrNotFound = errors.New("executable not found")

	// ErrExit indicates the process ran but exited with a non-zero status.
	ErrExit = errors.New("non-zero exit status")
)

// Runner runs an external command and returns its raw stdout.
type Runner interface {
	// Output runs name with args, waits for it to exit and returns stdout.
	// The context bounds the lifetime of the child and anything it starts.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner implements Runner with os/exec. Console windows are suppressed
// on Windows so the launcher never flashes a terminal.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Output runs the command and returns stdout.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Cancel = func() error { return killTree(cmd) }
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &limitedBuffer{buf: &stderr, limit: maxStderrBytes}

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout.Bytes(), fmt.Errorf("%s: %w", CommandLine(name, args...), ctxErr)
	}
	if errors.Is(err, exec.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(stderr.String())
		return stdout.Bytes(), fmt.Errorf("%s: %w (code %d): %s", CommandLine(name, args...), ErrExit, exitErr.ExitCode(), msg)
	}
	return nil, fmt.Errorf("failed to run %s: %w", CommandLine(name, args...), err)
}

// CommandLine renders name and args the way they are keyed in FakeRunner and
// quoted in logs.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// limitedBuffer discards writes beyond limit but reports them as written so
// the child never blocks on a full pipe.
type limitedBuffer struct {
	buf   *bytes.Buffer
	limit int
}

func (l *limitedBuffer) Write(p []byte) (int, error) {
	if remaining := l.limit - l.buf.Len(); remaining > 0 {
		if len(p) > remaining {
			l.buf.Write(p[:remaining])
		} else {
			l.buf.Write(p)
		}
	}
	return len(p), nil
}
