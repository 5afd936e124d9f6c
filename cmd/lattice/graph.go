package main

import (
	"github.com/aretw0/lattice/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <tree>",
	Short: "Export the node tree visualization",
	Long:  `Loads the tree file and outputs a Mermaid diagram (graph TD) of the node forest.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspaceWithTree(cmd, args)
		if err != nil {
			return err
		}
		selected, _ := cmd.Flags().GetString("select")
		return cli.Graph(cmd.OutOrStdout(), ws, selected)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("select", "", "Highlight a node and its ancestors")
}
