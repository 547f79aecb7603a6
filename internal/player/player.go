// Package player turns a user-configured player command into a concrete
// command line and supervises the player process.
// Commands are never run through a shell: POSIX players get an explicit argv,
// Windows players get the single command-line string CreateProcess expects.
package player

import (
	"runtime"
	"strings"
)

// Placeholder is replaced by the stream target in an args template.
const Placeholder = "{filename}"

// StdinMarker tells the player to read the stream from standard input.
const StdinMarker = "-"

// Dialect parses player commands and builds command lines for one platform
// family. Pick one with NativeDialect or DialectFor and use it throughout.
type Dialect interface {
	// Name returns "posix" or "windows".
	Name() string

	// Parse splits a player spec into the executable path and its base args.
	Parse(spec string) (*Command, error)

	// Expand substitutes target into template. On POSIX every element is one
	// argument; on Windows every element is a raw command-line fragment.
	Expand(template string, target Target) ([]string, error)

	// Build combines a parsed command with the expanded template.
	Build(cmd *Command, extra []string) CommandLine
}

var (
	// POSIX quotes and splits like a POSIX shell.
	POSIX Dialect = posixDialect{}

	// Windows keeps the command line as one string.
	Windows Dialect = windowsDialect{}
)

// DialectFor returns the dialect used on the given GOOS.
func DialectFor(goos string) Dialect {
	if goos == "windows" {
		return Windows
	}
	return POSIX
}

// NativeDialect returns the dialect of the running platform.
func NativeDialect() Dialect {
	return DialectFor(runtime.GOOS)
}

// Command is a parsed player spec.
type Command struct {
	Path string   // executable, never empty
	Args []string // baked-in arguments following the path

	raw    string // windows: the player command as given, path quoted if needed
	parsed int    // number of Args parsed from the player command
}

// Append adds discrete arguments after the player command's own arguments.
func (c *Command) Append(args ...string) {
	c.Args = append(c.Args, args...)
}

// Target is what the player is told to open: its standard input or a URL.
type Target struct {
	url string
}

// Pipe returns the target for streaming bytes into the player's stdin.
func Pipe() Target { return Target{} }

// URL returns a passthrough target.
func URL(u string) Target { return Target{url: u} }

// IsPipe reports whether the player reads from stdin.
func (t Target) IsPipe() bool { return t.url == "" }

// String returns the positional argument handed to the player.
func (t Target) String() string {
	if t.IsPipe() {
		return StdinMarker
	}
	return t.url
}

// Mode returns "pipe" or "passthrough".
func (t Target) Mode() string {
	if t.IsPipe() {
		return "pipe"
	}
	return "passthrough"
}

// replaceFirst substitutes value for the first placeholder among tokens, or
// appends value when there is none. It reports whether a placeholder was found.
func replaceFirst(tokens []string, value string) ([]string, bool) {
	for i, tok := range tokens {
		if strings.Contains(tok, Placeholder) {
			tokens[i] = strings.Replace(tok, Placeholder, value, 1)
			return tokens, true
		}
	}
	return append(tokens, value), false
}
