package components

import (
	"fmt"
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"zkevmsite/internal/tools/roadmap"
	"zkevmsite/internal/tracker"
)

// RoadmapSVG draws a laid out graph. Every node carries its ancestor set in
// data-ancestors so the page script can highlight on hover without another
// request; h supplies the initial opacities.
func RoadmapSVG(gr *roadmap.Graph, size roadmap.Size, opts roadmap.LayoutOptions, h roadmap.Highlight) g.Node {
	ancestors := gr.AncestorIndex()
	return g.El("svg",
		Class("roadmap-graph"),
		ID("roadmap"),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", fmt.Sprintf("0 0 %.0f %.0f", size.Width, size.Height)),
		g.Attr("width", fmt.Sprintf("%.0f", size.Width)),
		g.Attr("height", fmt.Sprintf("%.0f", size.Height)),
		g.Attr("role", "img"),
		g.Attr("aria-label", "Roadmap dependency graph"),
		g.If(h.Focus != "", g.Attr("data-focus", h.Focus)),
		g.El("g", Class("edges"), g.Map(gr.Edges, func(e roadmap.Edge) g.Node {
			return edgePath(gr, e, opts, h.Edges[e])
		})),
		g.El("g", Class("nodes"), g.Map(gr.Nodes, func(n roadmap.Node) g.Node {
			return nodeGroup(n, opts, ancestors[n.ID], h.Nodes[n.ID])
		})),
	)
}

func edgePath(gr *roadmap.Graph, e roadmap.Edge, opts roadmap.LayoutOptions, opacity float64) g.Node {
	src, ok := gr.Node(e.Source)
	if !ok {
		return nil
	}
	dst, ok := gr.Node(e.Target)
	if !ok {
		return nil
	}
	x1, y1 := src.X+opts.NodeWidth, src.Y+opts.NodeHeight/2
	x2, y2 := dst.X, dst.Y+opts.NodeHeight/2
	mid := (x1 + x2) / 2
	return g.El("path",
		Class("edge"),
		g.Attr("data-source", e.Source),
		g.Attr("data-target", e.Target),
		g.Attr("d", fmt.Sprintf("M%.1f,%.1f C%.1f,%.1f %.1f,%.1f %.1f,%.1f", x1, y1, mid, y1, mid, y2, x2, y2)),
		g.Attr("opacity", opacityAttr(opacity)),
	)
}

func nodeGroup(n roadmap.Node, opts roadmap.LayoutOptions, ancestors []string, opacity float64) g.Node {
	return g.El("g",
		Class("node "+statusClass(n.Status)),
		g.Attr("data-id", n.ID),
		g.Attr("data-ancestors", strings.Join(ancestors, " ")),
		g.Attr("transform", fmt.Sprintf("translate(%.1f,%.1f)", n.X, n.Y)),
		g.Attr("opacity", opacityAttr(opacity)),
		g.El("a",
			g.Attr("href", "/track/roadmap?focus="+url.QueryEscape(n.ID)),
			g.El("rect",
				g.Attr("width", fmt.Sprintf("%.0f", opts.NodeWidth)),
				g.Attr("height", fmt.Sprintf("%.0f", opts.NodeHeight)),
				g.Attr("rx", "8"),
			),
			g.El("text", Class("node-title"), g.Attr("x", "12"), g.Attr("y", "26"), g.Text(n.Title)),
			g.El("text", Class("node-meta"), g.Attr("x", "12"), g.Attr("y", "46"),
				g.Textf("%s · %s", n.Status.Label(), n.Priority)),
		),
	)
}

// opacityAttr treats a missing entry as fully visible.
func opacityAttr(v float64) string {
	if v == 0 {
		v = 1
	}
	return fmt.Sprintf("%g", v)
}

// DependencyList renders an item's dependencies. Ids that resolve link to
// the roadmap focused on them; the rest are plain labels.
func DependencyList(item tracker.RoadmapItem, d tracker.Dataset) g.Node {
	if len(item.Dependencies) == 0 {
		return nil
	}
	return Div(
		Class("dependencies"),
		Span(Class("muted"), g.Text("Depends on: ")),
		g.Map(item.Dependencies, func(id string) g.Node {
			dep, ok := d.RoadmapItem(id)
			if !ok {
				return Span(Class("dependency dependency-missing"), g.Text(id))
			}
			return A(Class("dependency"), Href("/track/roadmap?focus="+url.QueryEscape(dep.ID)), g.Text(dep.Title))
		}),
	)
}

// RoadmapItemList renders a category's roadmap items with their dependencies.
func RoadmapItemList(items []tracker.RoadmapItem, d tracker.Dataset) g.Node {
	if len(items) == 0 {
		return P(Class("empty"), g.Text("Nothing on the roadmap for this category."))
	}
	return Ul(
		Class("roadmap-items"),
		g.Map(items, func(item tracker.RoadmapItem) g.Node {
			return Li(
				ID("item-"+item.ID),
				Div(
					Class("item-header"),
					Strong(g.Text(item.Title)),
					StatusBadge(item.Status),
					PriorityBadge(item.Priority),
					g.If(item.TargetDate != "", Span(Class("muted"), g.Text("Target "+item.TargetDate))),
				),
				P(g.Text(item.Description)),
				DependencyList(item, d),
			)
		}),
	)
}
