package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"zkevmsite/internal/printer"
	"zkevmsite/internal/tools/roadmap"
)

func newGraphCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the roadmap dependency graph as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := roadmap.Export(dataset(), out)
			if err != nil {
				return printer.Error("Export failed", err.Error())
			}

			w := cmd.OutOrStdout()
			if out == "" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}
			printer.Success(w, "wrote %s: %d items, %d edges, %d categories",
				out, doc.Totals.Items, doc.Totals.Edges, doc.Totals.Clusters)
			for _, d := range doc.Dangling {
				printer.Warning(w, "%s depends on unknown item %q", d.Item, d.Dependency)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "roadmap.json", "output path for the graph JSON; empty writes it to stdout")
	return cmd
}

func newAncestorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ancestors <item-id>",
		Short: "List everything a roadmap item depends on, directly or not",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dataset()
			g := roadmap.Build(d.Roadmap)
			id := args[0]
			if _, ok := g.Node(id); !ok {
				return printer.Error("Unknown roadmap item", "No item has id "+id+".")
			}

			w := cmd.OutOrStdout()
			index := g.AncestorIndex()
			printer.Heading(w, "%s depends on %d items", id, len(index[id])-1)
			for _, a := range index[id] {
				if a == id {
					continue
				}
				n, _ := g.Node(a)
				fmt.Fprintf(w, "  %-28s %s\n", a, printer.Status(n.Status))
			}
			if blocked := d.Dependents(id); len(blocked) > 0 {
				printer.Heading(w, "%s unblocks %d items", id, len(blocked))
				for _, item := range blocked {
					fmt.Fprintf(w, "  %-28s %s\n", item.ID, printer.Status(item.Status))
				}
			}
			return nil
		},
	}
}
