package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"livecli/internal/player"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the livecli version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "livecli %s (%s/%s, %s dialect)\n",
			Version, runtime.GOOS, runtime.GOARCH, player.NativeDialect().Name())
		return err
	},
}
