package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"livecli/internal/history"
	"livecli/internal/player"
	"livecli/internal/ui"
)

var (
	flagReplay bool
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, replay or clear past player sessions",
	Args:  cobra.NoArgs,
	RunE:  historyRun,
}

func init() {
	historyCmd.Flags().BoolVarP(&flagReplay, "replay", "r", false, "Pick a session with fzf and play it again")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the session history")
	historyCmd.MarkFlagsMutuallyExclusive("replay", "clear")
}

func historyRun(cmd *cobra.Command, args []string) error {
	if flagClear {
		return historyClear(cmd)
	}

	sessions, err := history.Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history entries found.")
		return nil
	}

	items := history.FormatForDisplay(sessions)
	if !flagReplay {
		for _, item := range items {
			fmt.Fprintln(cmd.OutOrStdout(), item)
		}
		return nil
	}

	idx, err := ui.Select("Replay", items)
	if err != nil {
		return err
	}
	// FormatForDisplay lists newest first.
	selected := sessions[len(sessions)-1-idx]

	req, err := requestFromConfig(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	req.URL = selected.URL
	req.Protocol = selected.Protocol
	if !cmd.Flags().Changed("player") {
		req.Player = selected.Player
	}
	if !cmd.Flags().Changed("player-args") {
		req.PlayerArgs = selected.PlayerArgs
	}
	// The recorded mode wins over the current passthrough list.
	if selected.Mode == "passthrough" {
		req.Passthrough = player.NewPassthroughSet(append(req.Passthrough.Protocols(), selected.Protocol)...)
	}

	return play(cmd.Context(), req)
}

func historyClear(cmd *cobra.Command) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		ok, err := ui.Confirm("Clear history?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := history.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}
