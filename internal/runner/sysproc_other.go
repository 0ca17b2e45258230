//go:build !unix && !windows

package runner

import (
	"os/exec"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

func killTree(cmd *exec.Cmd) error {
	return cmd.Process.Kill()
}
