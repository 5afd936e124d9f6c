package main

import (
	"github.com/aretw0/lattice/internal/cli"
	"github.com/spf13/cobra"
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the active theme as CSS custom properties",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace(cmd)
		if err != nil {
			return err
		}
		return cli.CSS(cmd.OutOrStdout(), ws)
	},
}

func init() {
	rootCmd.AddCommand(cssCmd)
}
