package player

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultGracePeriod is how long the player gets to exit after SIGTERM, or
// after it stopped reading its input, before it is killed.
const DefaultGracePeriod = 5 * time.Second

const copyBufferSize = 32 * 1024

// State is the lifecycle state of a supervised player.
type State int

const (
	Spawning State = iota
	Running
	Exited
	Killed
	SpawnFailed
)

func (s State) String() string {
	switch s {
	case Spawning:
		return "spawning"
	case Running:
		return "running"
	case Exited:
		return "exited"
	case Killed:
		return "killed"
	case SpawnFailed:
		return "spawn_failed"
	default:
		return "unknown"
	}
}

// Outcome is the terminal state of a player run and the exit status to report.
type Outcome struct {
	State    State
	ExitCode int
}

// Supervisor starts a player and follows it until it is gone.
// A Supervisor holds no per-run state and may be reused.
type Supervisor struct {
	// GracePeriod bounds every wait for the player to exit on its own.
	GracePeriod time.Duration

	// Stdout and Stderr receive the player's output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer

	logger zerolog.Logger
}

// NewSupervisor returns a Supervisor logging to logger.
func NewSupervisor(logger zerolog.Logger) *Supervisor {
	return &Supervisor{
		GracePeriod: DefaultGracePeriod,
		logger:      logger,
	}
}

// Run starts line and blocks until the player exits or ctx is cancelled.
//
// When src is non-nil it is copied into the player's stdin until EOF. Run
// takes ownership of src and closes it once the player is gone; Close must
// unblock a pending Read. A player that stops reading early is not an error.
// Cancelling ctx terminates the player.
// All background work has finished when Run returns.
func (s *Supervisor) Run(ctx context.Context, line CommandLine, src io.ReadCloser) (Outcome, error) {
	cmd := line.command()
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	var stdin io.WriteCloser
	if src != nil {
		pipe, err := cmd.StdinPipe()
		if err != nil {
			closeSource(src)
			return Outcome{State: SpawnFailed, ExitCode: ExitLaunchFailed},
				&PlayerLaunchError{Path: line.Executable(), Err: err}
		}
		stdin = pipe
	}

	if err := cmd.Start(); err != nil {
		if stdin != nil {
			_ = stdin.Close()
		}
		closeSource(src)
		return Outcome{State: SpawnFailed, ExitCode: ExitLaunchFailed},
			&PlayerLaunchError{Path: line.Executable(), Err: err}
	}

	log := s.logger.With().Int("pid", cmd.Process.Pid).Logger()
	log.Debug().Str("state", Running.String()).Msg("player started")

	var g errgroup.Group
	waitCh := make(chan error, 1)
	g.Go(func() error {
		waitCh <- cmd.Wait()
		return nil
	})

	var (
		fed      <-chan error
		stopFeed = func() {}
	)
	if src != nil {
		feedCtx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		g.Go(func() error {
			done <- s.feed(feedCtx, stdin, src)
			return nil
		})
		fed = done
		stopFeed = func() {
			cancel()
			closeSource(src)
		}
	}
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		stopFeed()
		_ = g.Wait()
	}()

	var grace <-chan time.Time
	for {
		select {
		case <-waitCh:
			out := exitOutcome(cmd.ProcessState)
			log.Debug().Str("state", out.State.String()).Int("exit_code", out.ExitCode).Msg("player exited")
			return out, nil

		case err := <-fed:
			fed = nil
			if err == nil {
				log.Debug().Msg("stream finished, waiting for player")
				continue
			}
			log.Debug().Err(err).Msg("player stopped reading its input")
			timer = time.NewTimer(s.GracePeriod)
			grace = timer.C

		case <-grace:
			log.Warn().Dur("grace", s.GracePeriod).Msg("player did not exit after closing its input, terminating")
			s.terminate(log, cmd.Process, waitCh)
			return Outcome{State: Killed, ExitCode: ExitKilled}, nil

		case <-ctx.Done():
			stopFeed()
			log.Info().Msg("interrupted, stopping player")
			s.terminate(log, cmd.Process, waitCh)
			return Outcome{State: Killed, ExitCode: ExitKilled}, nil
		}
	}
}

// feed copies src into the player's stdin and closes it afterwards.
// It returns the write error that ended the copy, or nil on EOF or stop.
func (s *Supervisor) feed(ctx context.Context, stdin io.WriteCloser, src io.Reader) error {
	defer stdin.Close()

	buf := make([]byte, copyBufferSize)
	for {
		if ctx.Err() != nil {
			return nil
		}
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := stdin.Write(buf[:n]); werr != nil {
				if ctx.Err() != nil {
					return nil
				}
				return werr
			}
		}
		if rerr != nil {
			if rerr != io.EOF && ctx.Err() == nil {
				s.logger.Warn().Err(rerr).Msg("reading stream failed")
			}
			return nil
		}
	}
}

// terminate asks the player to stop, then kills it once the grace period is
// over. It always drains waitCh so the process is reaped.
func (s *Supervisor) terminate(log zerolog.Logger, p *os.Process, waitCh <-chan error) {
	if err := interrupt(p); err != nil {
		log.Debug().Err(err).Msg("graceful stop unavailable, killing player")
	} else {
		select {
		case <-waitCh:
			return
		case <-time.After(s.GracePeriod):
			log.Warn().Dur("grace", s.GracePeriod).Msg("player ignored termination request, killing")
		}
	}

	if err := p.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		log.Error().Err(err).Msg("killing player failed")
	}
	<-waitCh
}

func exitOutcome(ps *os.ProcessState) Outcome {
	if ps == nil {
		return Outcome{State: Killed, ExitCode: ExitKilled}
	}
	code := ps.ExitCode()
	if code < 0 {
		return Outcome{State: Killed, ExitCode: ExitKilled}
	}
	return Outcome{State: Exited, ExitCode: code}
}

func closeSource(src io.ReadCloser) {
	if src != nil {
		_ = src.Close()
	}
}
