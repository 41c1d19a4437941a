package main

import (
	"github.com/spf13/cobra"

	"github.com/shiroemons/go-bwrep/internal/bwrep/config"
)

func newParseCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>...",
		Short: "Print the header of one or more replays",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp(cmd, cfg).RunInspect(cmd.Context(), args)
		},
	}
}
