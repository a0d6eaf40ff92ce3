// Package commands implements the zktrack CLI, which inspects the tracker
// dataset and exports the roadmap graph.
package commands

import (
	"github.com/spf13/cobra"

	"zkevmsite/internal/tracker"
)

// dataset is swapped out in tests.
var dataset = tracker.Default

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zktrack",
		Short: "Inspect zkEVM tracker data",
		Long: `zktrack reports progress from the tracker dataset, validates its
cross references and exports the roadmap dependency graph as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.AddCommand(newGraphCmd(), newProgressCmd(), newCheckCmd(), newAncestorsCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}
