//go:build !windows

package player

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helperProcessExtra(args []string) {
	switch args[0] {
	case "ignore-term":
		signal.Ignore(syscall.SIGTERM)
		fmt.Println("ready")
		time.Sleep(30 * time.Second)
	default:
		os.Exit(2)
	}
}

func TestRunForceKillsAfterGrace(t *testing.T) {
	s := newTestSupervisor()
	s.GracePeriod = 300 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ready := &signalWriter{ch: make(chan struct{})}
	s.Stdout = ready

	var cancelledAt time.Time
	go func() {
		select {
		case <-ready.ch:
		case <-time.After(10 * time.Second):
		}
		cancelledAt = time.Now()
		cancel()
	}()

	out, err := s.Run(ctx, helperLine(t, "ignore-term"), nil)
	require.NoError(t, err)
	assert.Equal(t, Outcome{State: Killed, ExitCode: ExitKilled}, out)
	assert.GreaterOrEqual(t, time.Since(cancelledAt), s.GracePeriod)
}

// signalWriter closes ch on the first write.
type signalWriter struct {
	once sync.Once
	ch   chan struct{}
}

func (w *signalWriter) Write(p []byte) (int, error) {
	w.once.Do(func() { close(w.ch) })
	return len(p), nil
}

func TestRunWindowsLineOnUnix(t *testing.T) {
	s := newTestSupervisor()
	helper := helperLine(t, "exit", "4")

	words := make([]string, len(helper))
	for i, arg := range helper {
		words[i] = quoteWindows(arg, false)
	}
	line := WindowsLine{Path: helper[0], Line: strings.Join(words, " ")}

	out, err := s.Run(context.Background(), line, nil)
	require.NoError(t, err)
	assert.Equal(t, Outcome{State: Exited, ExitCode: 4}, out)
}
