//go:build windows

package runner

import (
	"os/exec"
	"strconv"
	"syscall"

	"golang.org/x/sys/windows"
)

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}

// killTree terminates the child and its descendants with taskkill, falling
// back to killing the child alone.
func killTree(cmd *exec.Cmd) error {
	kill := exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(cmd.Process.Pid))
	kill.SysProcAttr = sysProcAttr()
	if err := kill.Run(); err != nil {
		return cmd.Process.Kill()
	}
	return nil
}
