package main

import (
	"fmt"
	"os"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/internal/cli"
	"github.com/aretw0/lattice/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Lattice resolves inherited, themed and responsive styles for component trees",
	Long: `Lattice loads a tree of style nodes (YAML, JSON or TOML) and resolves each node's
computed style: inherited from its ancestors, overridden per instance, with theme
tokens substituted and breakpoint rules applied for a given viewport width.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().String("themes", "", "Themes file (YAML, JSON or TOML)")
	rootCmd.PersistentFlags().String("theme", "", "Active theme name (default: the file's current theme or \"default\")")
	rootCmd.PersistentFlags().Float64("width", 0, "Viewport width in pixels used to resolve breakpoints (0: none active)")
	rootCmd.PersistentFlags().String("fallback", "smallest", "Breakpoint when none is active (smallest, default)")
}

// newWorkspace builds a Workspace from the persistent flags.
func newWorkspace(cmd *cobra.Command) (*lattice.Workspace, error) {
	flags := cmd.Flags()
	levelName, _ := flags.GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	opts := cli.Options{Debug: levelName == "debug"}
	opts.ThemesPath, _ = flags.GetString("themes")
	opts.Theme, _ = flags.GetString("theme")
	opts.Width, _ = flags.GetFloat64("width")
	opts.Fallback, _ = flags.GetString("fallback")

	return cli.NewWorkspace(opts, logging.New(level))
}

// newWorkspaceWithTree is newWorkspace plus the tree file given as first argument.
func newWorkspaceWithTree(cmd *cobra.Command, args []string) (*lattice.Workspace, error) {
	ws, err := newWorkspace(cmd)
	if err != nil {
		return nil, err
	}
	if err := cli.LoadTree(ws, args[0]); err != nil {
		return nil, err
	}
	return ws, nil
}
