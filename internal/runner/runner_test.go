package runner

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
}

func TestExecRunner_Output(t *testing.T) {
	skipOnWindows(t)
	r := NewExecRunner()

	out, err := r.Output(context.Background(), "sh", "-c", "printf 'Active code page: 850'")
	require.NoError(t, err)
	assert.Equal(t, "Active code page: 850", string(out))
}

func TestExecRunner_NotFound(t *testing.T) {
	r := NewExecRunner()

	_, err := r.Output(context.Background(), "planswitch-definitely-missing-binary")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	skipOnWindows(t)
	r := NewExecRunner()

	_, err := r.Output(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExit), "got %v", err)
	assert.Contains(t, err.Error(), "boom")
}

func TestExecRunner_Timeout(t *testing.T) {
	skipOnWindows(t)
	r := NewExecRunner()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.Output(ctx, "sh", "-c", "sleep 5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExecRunner_TimeoutKillsForkedChildren(t *testing.T) {
	skipOnWindows(t)
	r := NewExecRunner()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	// The shell forks sleep, which inherits stdout.
	start := time.Now()
	_, err := r.Output(ctx, "sh", "-c", "sleep 8; :")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestExecRunner_TimeoutWithDetachedChild(t *testing.T) {
	skipOnWindows(t)
	if _, err := exec.LookPath("setsid"); err != nil {
		t.Skip("setsid not available")
	}
	r := NewExecRunner()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	// The detached sleep leaves the process group and keeps stdout open.
	start := time.Now()
	_, err := r.Output(ctx, "sh", "-c", "setsid sleep 8 & sleep 8")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "chcp", CommandLine("chcp"))
	assert.Equal(t, "powercfg /list", CommandLine("powercfg", "/list"))
	assert.Equal(t, "wmic computersystem get model", CommandLine("wmic", "computersystem", "get", "model"))
}

func TestFakeRunner(t *testing.T) {
	f := NewFakeRunner()
	f.Set("powercfg /list", "output")
	f.SetResponse("powercfg /getactivescheme", Response{Err: ErrExit})

	out, err := f.Output(context.Background(), "powercfg", "/list")
	require.NoError(t, err)
	assert.Equal(t, "output", string(out))

	_, err = f.Output(context.Background(), "powercfg", "/getactivescheme")
	assert.ErrorIs(t, err, ErrExit)

	_, err = f.Output(context.Background(), "wmic")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{"powercfg /list", "powercfg /getactivescheme", "wmic"}, f.Calls())
	assert.Equal(t, 1, f.CallCount("powercfg /list"))
}

func TestFakeRunner_BlockHonoursContext(t *testing.T) {
	f := NewFakeRunner()
	f.SetResponse("powershell", Response{Block: true})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Output(ctx, "powershell")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
