//go:build !windows

package player

import "os/exec"

// setCommandLine passes the words Windows would split the line into as argv.
func setCommandLine(cmd *exec.Cmd, w WindowsLine) {
	if args := w.Argv(); len(args) > 1 {
		cmd.Args = append([]string{w.Path}, args[1:]...)
	}
}
