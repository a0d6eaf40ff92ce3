package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"zkevmsite/internal/printer"
)

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Print milestone progress by category, client and zkVM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dataset()
			w := cmd.OutOrStdout()

			printer.Heading(w, "Categories")
			for _, s := range d.Summaries() {
				fmt.Fprintf(w, "  %-22s %s\n", s.Category.Name, printer.Bar(s.Milestones, 20))
			}
			fmt.Fprintf(w, "  %-22s %s\n", "Overall", printer.Bar(d.Overall(), 20))

			printer.Heading(w, "\nClients")
			for _, c := range d.Clients {
				fmt.Fprintf(w, "  %-22s %s\n", c.Name, printer.Bar(d.ClientProgress(c), 20))
			}

			printer.Heading(w, "\nzkVMs")
			for _, z := range d.ZKVMs {
				fmt.Fprintf(w, "  %-22s %s\n", z.Name, printer.Bar(d.ZKVMProgress(z), 20))
			}
			return nil
		},
	}
}
