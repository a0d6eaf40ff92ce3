package roadmap

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// LayoutOptions sizes the left-to-right layered layout.
type LayoutOptions struct {
	NodeWidth  float64
	NodeHeight float64
	RankSep    float64
	NodeSep    float64
	Margin     float64
}

// DefaultLayout matches the node card size the roadmap page draws.
var DefaultLayout = LayoutOptions{
	NodeWidth:  220,
	NodeHeight: 64,
	RankSep:    80,
	NodeSep:    24,
	Margin:     20,
}

// Size is the canvas needed for a laid out graph.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Layout assigns ranks and coordinates to every node. A node's rank is the
// length of its longest dependency chain in the gonum dependency graph;
// within a rank nodes are ordered by the mean position of their dependencies.
func (g *Graph) Layout(opts LayoutOptions) Size {
	if len(g.Nodes) == 0 {
		return Size{}
	}

	ranks := g.ranks()
	byRank := make(map[int][]int)
	maxRank := 0
	for i := range g.Nodes {
		r := ranks[g.Nodes[i].ID]
		g.Nodes[i].Rank = r
		byRank[r] = append(byRank[r], i)
		if r > maxRank {
			maxRank = r
		}
	}

	categoryOrder := make(map[string]int)
	for _, n := range g.Nodes {
		if _, ok := categoryOrder[n.Category]; !ok {
			categoryOrder[n.Category] = len(categoryOrder)
		}
	}

	rev := g.reverseAdjacency()
	position := make(map[string]float64, len(g.Nodes))
	maxCount := 0

	for r := 0; r <= maxRank; r++ {
		layer := byRank[r]
		sort.SliceStable(layer, func(a, b int) bool {
			na, nb := g.Nodes[layer[a]], g.Nodes[layer[b]]
			if ca, cb := categoryOrder[na.Category], categoryOrder[nb.Category]; ca != cb {
				return ca < cb
			}
			return na.ID < nb.ID
		})
		if r > 0 {
			bary := make(map[int]float64, len(layer))
			for pos, idx := range layer {
				bary[idx] = float64(pos)
				deps := rev[g.Nodes[idx].ID]
				var sum float64
				var n int
				for _, dep := range deps {
					if p, ok := position[dep]; ok {
						sum += p
						n++
					}
				}
				if n > 0 {
					bary[idx] = sum / float64(n)
				}
			}
			sort.SliceStable(layer, func(a, b int) bool {
				return bary[layer[a]] < bary[layer[b]]
			})
		}
		for pos, idx := range layer {
			position[g.Nodes[idx].ID] = float64(pos)
		}
		byRank[r] = layer
		if len(layer) > maxCount {
			maxCount = len(layer)
		}
	}

	rowStep := opts.NodeHeight + opts.NodeSep
	colStep := opts.NodeWidth + opts.RankSep
	for r := 0; r <= maxRank; r++ {
		layer := byRank[r]
		offset := float64(maxCount-len(layer)) * rowStep / 2
		for pos, idx := range layer {
			g.Nodes[idx].X = opts.Margin + float64(r)*colStep
			g.Nodes[idx].Y = opts.Margin + offset + float64(pos)*rowStep
		}
	}

	return Size{
		Width:  2*opts.Margin + float64(maxRank+1)*colStep - opts.RankSep,
		Height: 2*opts.Margin + float64(maxCount)*rowStep - opts.NodeSep,
	}
}

// ranks computes the longest-path rank of every node over the dependency
// graph with its cycles broken.
func (g *Graph) ranks() map[string]int {
	dg := g.acyclic()
	rank := make(map[string]int, len(g.Nodes))

	order, err := topo.Sort(dg)
	if err != nil {
		// acyclic leaves no cycles behind; keep every node on the first rank.
		return rank
	}
	for _, n := range order {
		r := 0
		deps := dg.To(n.ID())
		for deps.Next() {
			if dr := rank[g.Nodes[deps.Node().ID()].ID] + 1; dr > r {
				r = dr
			}
		}
		rank[g.Nodes[n.ID()].ID] = r
	}
	return rank
}

// acyclic builds the dependency graph keyed by node index, edges pointing
// from a dependency to its dependent. Inside a strongly connected component
// only edges running forward in roadmap order are kept, and self
// dependencies are dropped.
func (g *Graph) acyclic() *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for i := range g.Nodes {
		dg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges {
		from, to := int64(g.index[e.Source]), int64(g.index[e.Target])
		if from == to {
			continue
		}
		dg.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
	}

	for _, component := range topo.TarjanSCC(dg) {
		if len(component) < 2 {
			continue
		}
		members := make(map[int64]bool, len(component))
		for _, n := range component {
			members[n.ID()] = true
		}
		for _, n := range component {
			for _, next := range graph.NodesOf(dg.From(n.ID())) {
				if members[next.ID()] && next.ID() < n.ID() {
					dg.RemoveEdge(n.ID(), next.ID())
				}
			}
		}
	}
	return dg
}
