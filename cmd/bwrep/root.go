package main

import (
	"github.com/spf13/cobra"

	"github.com/shiroemons/go-bwrep/internal/bwrep/app"
	"github.com/shiroemons/go-bwrep/internal/bwrep/config"
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "bwrep",
		Short: "Inspect and recolour StarCraft: Remastered replays",
		Long: `bwrep reads the header of StarCraft: Remastered (1.21+) replay files
and rewrites their embedded player colour section.

Examples:
  # Show the header of a replay
  bwrep parse game.rep

  # Print duration and players of every replay below a folder
  bwrep batch ./replays --all

  # Paint players blue/orange by position
  bwrep recolour game.rep -o game_blue_orange.rep`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ApplyFile(cfg, cmd.Flags()); err != nil {
				return err
			}
			return cfg.Validate()
		},
	}
	config.BindGlobalFlags(rootCmd.PersistentFlags(), cfg)

	rootCmd.AddCommand(
		newParseCmd(cfg),
		newBatchCmd(cfg),
		newRecolourCmd(cfg),
	)
	return rootCmd
}

// newApp はコマンドの出力先を使う App を作成します
func newApp(cmd *cobra.Command, cfg *config.Config) *app.App {
	return app.NewWithOptions(cfg, app.Options{Output: cmd.OutOrStdout()})
}
