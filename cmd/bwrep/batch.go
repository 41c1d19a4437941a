package main

import (
	"github.com/spf13/cobra"

	"github.com/shiroemons/go-bwrep/internal/bwrep/config"
)

func newBatchCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [root]",
		Short: "Print duration and players of every replay below a folder",
		Long: `Walk root (default: the configured root or the current directory) and
print one line per replay:

  path: H:MM:SS {Player1, Player2}

Replays of other versions or with broken headers are skipped.
With --all a summary row (games, total duration, players) follows
each folder.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Root = args[0]
			}
			return newApp(cmd, cfg).RunBatch(cmd.Context())
		},
	}
	config.BindBatchFlags(cmd.Flags(), cfg)
	return cmd
}
