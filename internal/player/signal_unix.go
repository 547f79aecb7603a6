//go:build !windows

package player

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// interrupt sends SIGTERM. A process that is already gone is not an error.
func interrupt(p *os.Process) error {
	if err := p.Signal(unix.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
