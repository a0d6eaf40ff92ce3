package roadmap

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"zkevmsite/internal/tracker"
)

func items(deps map[string][]string, order ...string) []tracker.RoadmapItem {
	out := make([]tracker.RoadmapItem, 0, len(order))
	for _, id := range order {
		out = append(out, tracker.RoadmapItem{ID: id, Title: id, Category: "c", Dependencies: deps[id]})
	}
	return out
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestAncestorsFollowsReverseDependsOnEdges(t *testing.T) {
	// a <- b <- d, a <- c <- d, e independent, f depends on d
	g := Build(items(map[string][]string{
		"b": {"a"},
		"c": {"a"},
		"d": {"b", "c"},
		"f": {"d"},
	}, "a", "b", "c", "d", "e", "f"))

	tests := map[string][]string{
		"a": {"a"},
		"b": {"a", "b"},
		"d": {"a", "b", "c", "d"},
		"e": {"e"},
		"f": {"a", "b", "c", "d", "f"},
	}
	for hovered, want := range tests {
		if diff := cmp.Diff(want, keys(g.Ancestors(hovered))); diff != "" {
			t.Fatalf("Ancestors(%q) mismatch (-want +got):\n%s", hovered, diff)
		}
	}
}

func TestAncestorsTerminatesOnCycles(t *testing.T) {
	g := Build(items(map[string][]string{
		"a": {"c"},
		"b": {"a"},
		"c": {"b"},
		"s": {"s"},
	}, "a", "b", "c", "s"))

	if diff := cmp.Diff([]string{"a", "b", "c"}, keys(g.Ancestors("b"))); diff != "" {
		t.Fatalf("cycle ancestors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"s"}, keys(g.Ancestors("s"))); diff != "" {
		t.Fatalf("self loop ancestors mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRecordsDanglingDependencies(t *testing.T) {
	g := Build(items(map[string][]string{
		"b": {"a", "ghost", "a"},
	}, "a", "b"))

	if diff := cmp.Diff([]Edge{{Source: "a", Target: "b"}}, g.Edges); diff != "" {
		t.Fatalf("edges mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Dangling{{Item: "b", Dependency: "ghost"}}, g.Dangling); diff != "" {
		t.Fatalf("dangling mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlightDimsOutsideSubgraph(t *testing.T) {
	g := Build(items(map[string][]string{
		"b": {"a"},
		"c": {"b"},
		"d": {"a"},
	}, "a", "b", "c", "d"))

	h := g.Highlight("c")

	for _, id := range []string{"a", "b", "c"} {
		if !h.Visible(id) {
			t.Fatalf("expected %s visible when hovering c", id)
		}
	}
	if h.Nodes["d"] != DimmedOpacity {
		t.Fatalf("expected d dimmed, got %v", h.Nodes["d"])
	}
	if got := h.Edges[Edge{Source: "a", Target: "b"}]; got != 1 {
		t.Fatalf("edge a->b opacity = %v, want 1", got)
	}
	if got := h.Edges[Edge{Source: "a", Target: "d"}]; got != DimmedOpacity {
		t.Fatalf("edge a->d opacity = %v, want %v", got, DimmedOpacity)
	}

	reset := g.Reset()
	for id, opacity := range reset.Nodes {
		if opacity != 1 {
			t.Fatalf("reset left %s at %v", id, opacity)
		}
	}
	for e, opacity := range reset.Edges {
		if opacity != 1 {
			t.Fatalf("reset left edge %v at %v", e, opacity)
		}
	}
}

func TestHighlightUnknownNodeKeepsOnlyItself(t *testing.T) {
	g := Build(items(nil, "a", "b"))
	h := g.Highlight("zzz")
	if h.Visible("a") || h.Visible("b") {
		t.Fatalf("expected every node dimmed for an unknown focus, got %v", h.Nodes)
	}
}

func TestLayoutRanksByLongestPath(t *testing.T) {
	g := Build(items(map[string][]string{
		"b": {"a"},
		"c": {"b"},
		"d": {"a", "c"},
	}, "a", "b", "c", "d", "e"))

	size := g.Layout(DefaultLayout)

	want := map[string]int{"a": 0, "b": 1, "c": 2, "d": 3, "e": 0}
	got := make(map[string]int)
	for _, n := range g.Nodes {
		got[n.ID] = n.Rank
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranks mismatch (-want +got):\n%s", diff)
	}

	a, _ := g.Node("a")
	d, _ := g.Node("d")
	if d.X <= a.X {
		t.Fatalf("expected dependents to the right of dependencies: a.X=%v d.X=%v", a.X, d.X)
	}
	if size.Width < d.X+DefaultLayout.NodeWidth {
		t.Fatalf("canvas width %v does not contain node at %v", size.Width, d.X)
	}
}

func TestLayoutSurvivesCycles(t *testing.T) {
	g := Build(items(map[string][]string{
		"a": {"b"},
		"b": {"a"},
	}, "a", "b"))

	size := g.Layout(DefaultLayout)
	if size.Width <= 0 || size.Height <= 0 {
		t.Fatalf("expected a non-empty canvas, got %+v", size)
	}
}

func TestLayoutBreaksCyclesInRoadmapOrder(t *testing.T) {
	g := Build(items(map[string][]string{
		"a": {"c", "a"},
		"b": {"a"},
		"c": {"b"},
		"d": {"c"},
	}, "a", "b", "c", "d"))

	g.Layout(DefaultLayout)

	want := map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}
	got := make(map[string]int)
	for _, n := range g.Nodes {
		got[n.ID] = n.Rank
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranks mismatch (-want +got):\n%s", diff)
	}
}

func TestExportDefaultRoadmap(t *testing.T) {
	out := filepath.Join(t.TempDir(), "graph", "roadmap.json")

	doc, err := Export(tracker.Default(), out)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if doc.Totals.Items != len(tracker.Default().Roadmap) {
		t.Fatalf("expected %d items, got %d", len(tracker.Default().Roadmap), doc.Totals.Items)
	}
	if doc.Totals.Dangling != 0 {
		t.Fatalf("default roadmap should not dangle, got %v", doc.Dangling)
	}

	members := 0
	for _, c := range doc.Clusters {
		members += c.Size
	}
	if members != doc.Totals.Items {
		t.Fatalf("clusters cover %d items, want %d", members, doc.Totals.Items)
	}

	external := 0
	for _, l := range doc.Links {
		external += l.Weight
	}
	internal := 0
	for _, c := range doc.Clusters {
		internal += c.InternalLinks
	}
	if internal+external != doc.Totals.Edges {
		t.Fatalf("internal %d + external %d != edges %d", internal, external, doc.Totals.Edges)
	}
}
