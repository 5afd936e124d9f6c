package main

import (
	"github.com/aretw0/lattice/internal/cli"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <tree>",
	Short: "Print computed styles as JSON",
	Long:  `Loads the tree file and prints the computed style of every node (or of --id) as a JSON object keyed by node id.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspaceWithTree(cmd, args)
		if err != nil {
			return err
		}
		id, _ := cmd.Flags().GetString("id")
		hash, _ := cmd.Flags().GetBool("hash")
		return cli.Resolve(cmd.OutOrStdout(), ws, id, hash)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().String("id", "", "Resolve a single node")
	resolveCmd.Flags().Bool("hash", false, "Print style hashes instead of styles")
}
