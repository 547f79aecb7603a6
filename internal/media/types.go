// Package media defines shared types for the livecli application.
package media

import "time"

// Stream is a resolved stream handed to the player core.
type Stream struct {
	URL      string // Absolute playback URL
	Protocol string // Protocol name used for the passthrough decision (e.g., "rtmp", "hls")
}

// Session records one player invocation in the history.
type Session struct {
	Time       time.Time
	URL        string // URL as given on the command line
	Protocol   string
	Mode       string // "pipe" or "passthrough"
	Player     string // Player spec, verbatim
	PlayerArgs string // Player args template, verbatim
	ExitCode   int
}
