package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"livecli/internal/config"
	"livecli/internal/history"
	"livecli/internal/log"
	"livecli/internal/media"
	"livecli/internal/player"
	"livecli/internal/source"
)

// playRequest is one player invocation, independent of where its values came from.
type playRequest struct {
	URL        string
	Protocol   string
	Player     string
	PlayerArgs string
	Title      string

	Passthrough player.PassthroughSet
	Grace       time.Duration
	Verbose     bool
	DryRun      bool
	Record      bool

	Out io.Writer // receives the --json plan
}

// invocationPlan is the --json output.
type invocationPlan struct {
	Mode        string   `json:"mode"`
	Protocol    string   `json:"protocol"`
	Target      string   `json:"target"`
	Executable  string   `json:"executable"`
	Argv        []string `json:"argv"`
	CommandLine string   `json:"command_line"`
}

// playRun is the default command: livecli <url> [protocol]
func playRun(cmd *cobra.Command, args []string) error {
	req, err := requestFromConfig(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	req.URL = args[0]
	if len(args) > 1 {
		req.Protocol = args[1]
	}
	return play(cmd.Context(), req)
}

// requestFromConfig fills the player settings of a request from cfg.
func requestFromConfig(c *config.Config, out io.Writer) (playRequest, error) {
	grace, err := c.Grace()
	if err != nil {
		return playRequest{}, err
	}
	return playRequest{
		Player:      c.Player,
		PlayerArgs:  c.PlayerArgs,
		Title:       c.Title,
		Passthrough: player.NewPassthroughSet(c.PlayerPassthrough...),
		Grace:       grace,
		Verbose:     c.VerbosePlayer,
		DryRun:      flagJSON,
		Record:      c.History,
		Out:         out,
	}, nil
}

// play resolves the stream, builds the player command line and runs it.
func play(ctx context.Context, req playRequest) error {
	logger := log.WithComponent("play")

	stream, err := source.Resolve(req.URL, req.Protocol)
	if err != nil {
		return err
	}
	if req.Player == "" {
		return errors.New("no player configured: use --player or set player in config.toml")
	}

	dialect := player.NativeDialect()
	pc, err := dialect.Parse(req.Player)
	if err != nil {
		return fmt.Errorf("parsing player: %w", err)
	}
	pc.Append(player.ProfileFor(pc.Path).TitleArgs(req.Title)...)

	// Decided before anything is opened: a passthrough stream is never read here.
	target := player.Decide(stream.Protocol, stream.URL, req.Passthrough)

	extra, err := dialect.Expand(req.PlayerArgs, target)
	if err != nil {
		return fmt.Errorf("parsing player args: %w", err)
	}
	line := dialect.Build(pc, extra)

	logger.Debug().
		Str("dialect", dialect.Name()).
		Str("mode", target.Mode()).
		Str("protocol", stream.Protocol).
		Str("cmd", line.String()).
		Msg("player command")

	if req.DryRun {
		enc := json.NewEncoder(req.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(invocationPlan{
			Mode:        target.Mode(),
			Protocol:    stream.Protocol,
			Target:      target.String(),
			Executable:  line.Executable(),
			Argv:        line.Argv(),
			CommandLine: line.String(),
		})
	}

	var src io.ReadCloser
	if target.IsPipe() {
		src, err = source.NewOpener().Open(ctx, stream)
		if err != nil {
			return err
		}
	}

	sup := player.NewSupervisor(logger)
	sup.GracePeriod = req.Grace
	if req.Verbose {
		sup.Stdout = os.Stdout
		sup.Stderr = os.Stderr
	}

	logger.Info().Str("mode", target.Mode()).Str("url", stream.URL).Msg("starting player")
	outcome, runErr := sup.Run(ctx, line, src)
	logger.Debug().Stringer("state", outcome.State).Int("exit_code", outcome.ExitCode).Msg("player finished")

	if req.Record {
		err := history.Append(media.Session{
			Time:       time.Now(),
			URL:        req.URL,
			Protocol:   stream.Protocol,
			Mode:       target.Mode(),
			Player:     req.Player,
			PlayerArgs: req.PlayerArgs,
			ExitCode:   outcome.ExitCode,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("could not record session")
		}
	}

	if runErr != nil {
		return runErr
	}
	if outcome.ExitCode != 0 {
		return &exitStatusError{code: outcome.ExitCode}
	}
	return nil
}
