//go:build windows

package player

import (
	"os/exec"
	"syscall"
)

// setCommandLine hands the prepared line to CreateProcess untouched.
func setCommandLine(cmd *exec.Cmd, w WindowsLine) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CmdLine = w.Line
}
