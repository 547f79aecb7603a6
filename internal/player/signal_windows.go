//go:build windows

package player

import (
	"errors"
	"os"
)

var errNoGracefulStop = errors.New("windows has no termination signal")

// interrupt always fails on Windows so the caller kills right away.
func interrupt(*os.Process) error {
	return errNoGracefulStop
}
