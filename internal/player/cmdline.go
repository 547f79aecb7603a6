package player

import (
	"os/exec"
	"strings"
)

// CommandLine is a fully built player invocation.
type CommandLine interface {
	// Executable returns the program to start.
	Executable() string

	// Argv returns the arguments the player will see, program name first.
	Argv() []string

	// String renders the command line for logs and dry runs.
	String() string

	command() *exec.Cmd
}

// ArgvLine is a POSIX command line: each element reaches the player as one
// argument, so no quoting is involved.
type ArgvLine []string

func (a ArgvLine) Executable() string { return a[0] }

func (a ArgvLine) Argv() []string { return append([]string(nil), a...) }

func (a ArgvLine) String() string {
	var b strings.Builder
	for i, arg := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		if arg == "" || strings.ContainsAny(arg, " \t\"'\\") {
			b.WriteString(quotePOSIX(arg))
		} else {
			b.WriteString(arg)
		}
	}
	return b.String()
}

func (a ArgvLine) command() *exec.Cmd {
	return exec.Command(a[0], a[1:]...)
}

// WindowsLine is a Windows command line: the player receives Line verbatim
// and splits it itself.
type WindowsLine struct {
	Path string
	Line string
}

func (w WindowsLine) Executable() string { return w.Path }

func (w WindowsLine) Argv() []string {
	args, err := SplitWindows(w.Line)
	if err != nil {
		return []string{w.Line}
	}
	return args
}

func (w WindowsLine) String() string { return w.Line }

func (w WindowsLine) command() *exec.Cmd {
	cmd := exec.Command(w.Path)
	setCommandLine(cmd, w)
	return cmd
}

// quotePOSIX single-quotes s for display.
func quotePOSIX(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
