package player

import (
	"sort"
	"strings"
)

// PassthroughSet holds the protocols whose URLs are handed to the player
// instead of being piped. Membership is case-insensitive.
type PassthroughSet map[string]struct{}

// NewPassthroughSet builds a set from protocol names.
func NewPassthroughSet(protocols ...string) PassthroughSet {
	set := make(PassthroughSet, len(protocols))
	for _, p := range protocols {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}

// ParsePassthrough parses a comma-separated protocol list such as "rtmp,hls".
func ParsePassthrough(list string) PassthroughSet {
	return NewPassthroughSet(strings.Split(list, ",")...)
}

// Has reports whether protocol is in the set.
func (s PassthroughSet) Has(protocol string) bool {
	_, ok := s[strings.ToLower(protocol)]
	return ok
}

// Protocols returns the members in sorted order.
func (s PassthroughSet) Protocols() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Decide picks the target for a resolved stream: its playback URL when the
// protocol is passed through, the player's stdin otherwise.
func Decide(protocol, playbackURL string, set PassthroughSet) Target {
	if set.Has(protocol) {
		return URL(playbackURL)
	}
	return Pipe()
}
