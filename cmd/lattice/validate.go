package main

import (
	"github.com/aretw0/lattice/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <tree>",
	Short: "Check node styles against the validation rules",
	Long:  `Validates the own style of every node and prints a report. Exits with status 1 if any node is invalid.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspaceWithTree(cmd, args)
		if err != nil {
			return err
		}
		return cli.Validate(cmd.OutOrStdout(), ws, cli.IsTerminal(cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
