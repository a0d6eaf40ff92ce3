package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"zkevmsite/internal/printer"
	"zkevmsite/internal/tracker"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate cross references in the tracker dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			issues := tracker.Validate(dataset())
			w := cmd.OutOrStdout()
			if len(issues) == 0 {
				printer.Success(w, "tracker data is consistent")
				return nil
			}
			for _, issue := range issues {
				printer.Warning(w, "%s", issue)
			}
			return printer.Error(fmt.Sprintf("%d issues found", len(issues)),
				"Unresolved references render as plain labels on the site.")
		},
	}
}
