package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiroemons/go-bwrep/internal/bwrep/config"
)

func newRecolourCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recolour <in>",
		Aliases: []string{"recolor"},
		Short:   "Rewrite player colours to blue (even) / orange (odd) by position",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newApp(cmd, cfg).Recolour(cmd.Context(), args[0], cfg.OutputPath)
			if err != nil {
				return err
			}
			if !cfg.DryRun {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	config.BindRecolourFlags(cmd.Flags(), cfg)
	return cmd
}
