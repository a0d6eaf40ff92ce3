package roadmap

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"zkevmsite/internal/tracker"
)

type ClusterMember struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Status     tracker.Status `json:"status"`
	Dependents int            `json:"dependents"`
}

// Cluster groups the roadmap items of one category.
type Cluster struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Size          int             `json:"size"`
	Complete      int             `json:"complete"`
	Members       []ClusterMember `json:"members"`
	InternalLinks int             `json:"internal_links"`
	ExternalLinks int             `json:"external_links"`
}

// ClusterLink counts dependency edges between two categories.
type ClusterLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

type Totals struct {
	Items    int `json:"items"`
	Edges    int `json:"edges"`
	Clusters int `json:"clusters"`
	Dangling int `json:"dangling"`
}

// Document is the exported roadmap graph.
type Document struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Totals      Totals        `json:"totals"`
	Size        Size          `json:"size"`
	Nodes       []Node        `json:"nodes"`
	Edges       []Edge        `json:"edges"`
	Dangling    []Dangling    `json:"dangling,omitempty"`
	Clusters    []Cluster     `json:"clusters"`
	Links       []ClusterLink `json:"links"`
}

type clusterPair struct {
	a string
	b string
}

// Export builds, lays out and summarises the roadmap graph, writing it to
// outPath when one is given.
func Export(d tracker.Dataset, outPath string) (Document, error) {
	g := Build(d.Roadmap)
	size := g.Layout(DefaultLayout)

	dependents := make(map[string]int, len(g.Nodes))
	for _, e := range g.Edges {
		dependents[e.Source]++
	}

	names := make(map[string]string, len(d.Categories))
	for _, c := range d.Categories {
		names[c.ID] = c.Name
	}

	byCluster := make(map[string]*Cluster)
	for _, n := range g.Nodes {
		c := byCluster[n.Category]
		if c == nil {
			name := names[n.Category]
			if name == "" {
				name = n.Category
			}
			c = &Cluster{ID: n.Category, Name: name}
			byCluster[n.Category] = c
		}
		c.Size++
		if n.Status == tracker.StatusComplete {
			c.Complete++
		}
		c.Members = append(c.Members, ClusterMember{
			ID:         n.ID,
			Title:      n.Title,
			Status:     n.Status,
			Dependents: dependents[n.ID],
		})
	}

	weights := make(map[clusterPair]int)
	for _, e := range g.Edges {
		src, _ := g.Node(e.Source)
		dst, _ := g.Node(e.Target)
		if src.Category == dst.Category {
			byCluster[src.Category].InternalLinks++
			continue
		}
		byCluster[src.Category].ExternalLinks++
		byCluster[dst.Category].ExternalLinks++
		weights[clusterPair{a: src.Category, b: dst.Category}]++
	}

	clusters := make([]Cluster, 0, len(byCluster))
	for _, c := range byCluster {
		sort.Slice(c.Members, func(i, j int) bool {
			if c.Members[i].Dependents == c.Members[j].Dependents {
				return c.Members[i].ID < c.Members[j].ID
			}
			return c.Members[i].Dependents > c.Members[j].Dependents
		})
		clusters = append(clusters, *c)
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Size == clusters[j].Size {
			return clusters[i].ID < clusters[j].ID
		}
		return clusters[i].Size > clusters[j].Size
	})

	links := make([]ClusterLink, 0, len(weights))
	for pair, weight := range weights {
		links = append(links, ClusterLink{Source: pair.a, Target: pair.b, Weight: weight})
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].Weight == links[j].Weight {
			if links[i].Source == links[j].Source {
				return links[i].Target < links[j].Target
			}
			return links[i].Source < links[j].Source
		}
		return links[i].Weight > links[j].Weight
	})

	doc := Document{
		GeneratedAt: time.Now().UTC(),
		Totals: Totals{
			Items:    len(g.Nodes),
			Edges:    len(g.Edges),
			Clusters: len(clusters),
			Dangling: len(g.Dangling),
		},
		Size:     size,
		Nodes:    g.Nodes,
		Edges:    g.Edges,
		Dangling: g.Dangling,
		Clusters: clusters,
		Links:    links,
	}

	if outPath != "" {
		if err := write(outPath, doc); err != nil {
			return Document{}, err
		}
	}

	return doc, nil
}

func write(outPath string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(outPath, data, 0o644)
}
