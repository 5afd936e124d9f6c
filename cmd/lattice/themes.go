package main

import (
	"github.com/aretw0/lattice/internal/cli"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available themes",
	Long:  `Lists registered themes. On a terminal each theme is shown with its colour swatches.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace(cmd)
		if err != nil {
			return err
		}
		return cli.Themes(cmd.OutOrStdout(), ws, cli.IsTerminal(cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
