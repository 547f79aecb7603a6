package player

import "fmt"

// Exit statuses reported for failures that happen before or around the player.
// Any other status is the player's own exit code.
const (
	ExitMalformedSpec = 64  // player spec or args template could not be parsed
	ExitLaunchFailed  = 127 // player could not be started
	ExitKilled        = 130 // player was terminated by us
)

// MalformedSpecError reports a player spec or args template with unbalanced
// quotes or a trailing escape character.
type MalformedSpecError struct {
	Input  string
	Offset int
	Reason string
}

func (e *MalformedSpecError) Error() string {
	return fmt.Sprintf("malformed player command %q: %s at offset %d", e.Input, e.Reason, e.Offset)
}

// PlayerLaunchError reports that the OS refused to start the player.
type PlayerLaunchError struct {
	Path string
	Err  error
}

func (e *PlayerLaunchError) Error() string {
	return fmt.Sprintf("launching player %s: %v", e.Path, e.Err)
}

func (e *PlayerLaunchError) Unwrap() error { return e.Err }
