// Package roadmap turns roadmap items into a dependency graph, lays it out
// and answers the ancestor queries behind hover highlighting.
package roadmap

import (
	"sort"

	"zkevmsite/internal/tracker"
)

// DimmedOpacity is applied to nodes and edges outside a highlighted subgraph.
const DimmedOpacity = 0.2

// Node is a roadmap item placed on the canvas.
type Node struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Category string           `json:"category"`
	Status   tracker.Status   `json:"status"`
	Priority tracker.Priority `json:"priority"`
	Rank     int              `json:"rank"`
	X        float64          `json:"x"`
	Y        float64          `json:"y"`
}

// Edge points from a dependency (Source) to the item that depends on it (Target).
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Dangling is a dependency id that does not resolve to a roadmap item.
type Dangling struct {
	Item       string `json:"item"`
	Dependency string `json:"dependency"`
}

// Graph is the node/edge form of the roadmap.
type Graph struct {
	Nodes    []Node     `json:"nodes"`
	Edges    []Edge     `json:"edges"`
	Dangling []Dangling `json:"dangling,omitempty"`

	index map[string]int
}

// Build constructs the graph from roadmap items. Dependencies that do not
// resolve are recorded as dangling, duplicates are collapsed.
func Build(items []tracker.RoadmapItem) *Graph {
	g := &Graph{
		Nodes: make([]Node, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if _, dup := g.index[item.ID]; dup {
			continue
		}
		g.index[item.ID] = len(g.Nodes)
		g.Nodes = append(g.Nodes, Node{
			ID:       item.ID,
			Title:    item.Title,
			Category: item.Category,
			Status:   item.Status.Normalize(),
			Priority: item.Priority,
		})
	}

	seen := make(map[Edge]struct{})
	for _, item := range items {
		for _, dep := range item.Dependencies {
			if _, ok := g.index[dep]; !ok {
				g.Dangling = append(g.Dangling, Dangling{Item: item.ID, Dependency: dep})
				continue
			}
			e := Edge{Source: dep, Target: item.ID}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			g.Edges = append(g.Edges, e)
		}
	}

	return g
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// reverseAdjacency maps each target to the sources pointing at it.
func (g *Graph) reverseAdjacency() map[string][]string {
	rev := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		rev[e.Target] = append(rev[e.Target], e.Source)
	}
	return rev
}

// Ancestors returns id plus every node reachable from it by walking
// depends-on edges backwards. The visited set stops cycles and self loops.
func (g *Graph) Ancestors(id string) map[string]struct{} {
	return ancestorsWith(g.reverseAdjacency(), id)
}

func ancestorsWith(rev map[string][]string, id string) map[string]struct{} {
	visited := map[string]struct{}{id: {}}
	queue := []string{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, src := range rev[current] {
			if _, ok := visited[src]; ok {
				continue
			}
			visited[src] = struct{}{}
			queue = append(queue, src)
		}
	}
	return visited
}

// AncestorIndex precomputes the ancestor set of every node, sorted, for
// embedding in the rendered page.
func (g *Graph) AncestorIndex() map[string][]string {
	rev := g.reverseAdjacency()
	out := make(map[string][]string, len(g.Nodes))
	for _, n := range g.Nodes {
		set := ancestorsWith(rev, n.ID)
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		out[n.ID] = ids
	}
	return out
}

// Highlight holds per-node and per-edge opacity.
type Highlight struct {
	Focus string
	Nodes map[string]float64
	Edges map[Edge]float64
}

// Visible reports whether a node is drawn at full opacity.
func (h Highlight) Visible(id string) bool {
	return h.Nodes[id] == 1
}

// Highlight keeps the ancestor subgraph of id opaque and dims the rest. An
// edge stays opaque only when both of its endpoints are in the subgraph.
func (g *Graph) Highlight(id string) Highlight {
	set := g.Ancestors(id)
	h := Highlight{
		Focus: id,
		Nodes: make(map[string]float64, len(g.Nodes)),
		Edges: make(map[Edge]float64, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		h.Nodes[n.ID] = DimmedOpacity
		if _, ok := set[n.ID]; ok {
			h.Nodes[n.ID] = 1
		}
	}
	for _, e := range g.Edges {
		h.Edges[e] = DimmedOpacity
		_, srcIn := set[e.Source]
		_, dstIn := set[e.Target]
		if srcIn && dstIn {
			h.Edges[e] = 1
		}
	}
	return h
}

// Reset returns every node and edge to full opacity.
func (g *Graph) Reset() Highlight {
	h := Highlight{
		Nodes: make(map[string]float64, len(g.Nodes)),
		Edges: make(map[Edge]float64, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		h.Nodes[n.ID] = 1
	}
	for _, e := range g.Edges {
		h.Edges[e] = 1
	}
	return h
}
