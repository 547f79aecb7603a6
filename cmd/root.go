// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"livecli/internal/config"
	"livecli/internal/log"
	"livecli/internal/player"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagPlayer      string
	flagPlayerArgs  string
	flagPassthrough []string
	flagTitle       string
	flagVerbose     bool
	flagJSON        bool
	flagDebug       bool
	flagGrace       time.Duration
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "livecli [flags] <url> [protocol]",
	Short: "Play live streams with an external media player",
	Long: `livecli hands a stream to an external player such as mpv or vlc.
Protocols listed in --player-passthrough are given to the player as a URL;
everything else is piped into the player's standard input.`,
	Args:              cobra.RangeArgs(1, 2),
	PersistentPreRunE: loadConfig,
	RunE:              playRun,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command and exits with the resulting status.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	code := exitCode(err)
	var status *exitStatusError
	if err != nil && !errors.As(err, &status) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlayer, "player", "p", "", "Player command, e.g. 'mpv --cache=yes'")
	rootCmd.PersistentFlags().StringVarP(&flagPlayerArgs, "player-args", "a", "", "Extra player arguments; {filename} marks where the stream goes")
	rootCmd.PersistentFlags().StringSliceVar(&flagPassthrough, "player-passthrough", nil, "Protocols handed to the player as a URL instead of piped")
	rootCmd.PersistentFlags().StringVar(&flagTitle, "title", "", "Media title shown by the player (mpv, vlc, iina, celluloid)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose-player", "v", false, "Show the player's console output")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Print the planned invocation as JSON without starting the player")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().DurationVar(&flagGrace, "grace", 0, "How long the player gets to exit before it is killed (default 5s)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	flags := cmd.Flags()
	if flags.Changed("player") {
		cfg.Player = flagPlayer
	}
	if flags.Changed("player-args") {
		cfg.PlayerArgs = flagPlayerArgs
	}
	if flags.Changed("player-passthrough") {
		cfg.PlayerPassthrough = flagPassthrough
	}
	if flags.Changed("title") {
		cfg.Title = flagTitle
	}
	if flagVerbose {
		cfg.VerbosePlayer = true
	}
	if flagDebug {
		cfg.Debug = true
	}
	if flags.Changed("grace") {
		cfg.GracePeriod = flagGrace.String()
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.Configure(log.Config{
		Level: cfg.Level(),
		JSON:  cfg.LogJSON,
	})
	log.L().Debug().Str("player", cfg.Player).Strs("passthrough", cfg.PlayerPassthrough).Msg("configuration loaded")

	return nil
}

// exitStatusError carries the player's non-zero exit status to Execute.
type exitStatusError struct {
	code int
}

func (e *exitStatusError) Error() string {
	return fmt.Sprintf("player exited with status %d", e.code)
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var status *exitStatusError
	var malformed *player.MalformedSpecError
	var launch *player.PlayerLaunchError
	switch {
	case errors.As(err, &status):
		return status.code
	case errors.As(err, &malformed):
		return player.ExitMalformedSpec
	case errors.As(err, &launch):
		return player.ExitLaunchFailed
	default:
		return 1
	}
}
