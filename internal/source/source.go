// Package source turns a command-line URL into a stream and opens its bytes
// when the stream is piped into the player.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"livecli/internal/httputil"
	"livecli/internal/media"
)

// ErrNotPipeable is returned by Open for protocols that can only be handed
// to the player as a URL.
var ErrNotPipeable = errors.New("protocol cannot be piped; add it to --player-passthrough")

// Resolve builds a stream from a URL and an optional protocol name.
// A URL without a scheme gets the protocol prefixed ("test.se", "rtmp"
// becomes rtmp://test.se). The protocol defaults to the URL's scheme.
func Resolve(rawURL, protocol string) (*media.Stream, error) {
	rawURL = strings.TrimSpace(rawURL)
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	if rawURL == "" {
		return nil, fmt.Errorf("no URL given")
	}

	if !strings.Contains(rawURL, "://") {
		if protocol == "" {
			return nil, fmt.Errorf("URL %q has no scheme and no protocol was given", rawURL)
		}
		rawURL = protocol + "://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("URL %q has no scheme", rawURL)
	}
	if protocol == "" {
		protocol = strings.ToLower(u.Scheme)
	}

	return &media.Stream{URL: u.String(), Protocol: protocol}, nil
}

// Opener opens stream bytes for pipe mode.
type Opener struct {
	Client *http.Client
}

// NewOpener returns an Opener backed by the hardened HTTP client.
func NewOpener() *Opener {
	return &Opener{Client: httputil.NewClient()}
}

// Open returns a reader over the stream's bytes. The caller closes it;
// canceling ctx aborts an HTTP body read.
func (o *Opener) Open(ctx context.Context, s *media.Stream) (io.ReadCloser, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return nil, fmt.Errorf("malformed URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		resp, err := httputil.Get(ctx, o.Client, s.URL)
		if err != nil {
			return nil, fmt.Errorf("opening stream: %w", err)
		}
		return resp.Body, nil
	case "file":
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening stream: %w", err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%s: %w", u.Scheme, ErrNotPipeable)
	}
}
