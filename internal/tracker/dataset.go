// Package tracker holds the hand-authored progress data for the zkEVM effort
// and the read-only queries the dashboards run over it.
package tracker

import "sort"

// Default returns the dataset compiled into the binary.
func Default() Dataset {
	return Dataset{
		Categories:       categories,
		Milestones:       milestones,
		Roadmap:          roadmap,
		ClientMilestones: clientMilestones,
		ZKVMMilestones:   zkvmMilestones,
		Clients:          clients,
		GuestPrograms:    guestPrograms,
		ZKVMs:            zkvms,
		Security:         security,
		Benchmarks:       benchmarks,
		Team:             team,
	}
}

// Category looks up a category by id.
func (d Dataset) Category(id string) (Category, bool) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// RoadmapItem looks up a roadmap item by id.
func (d Dataset) RoadmapItem(id string) (RoadmapItem, bool) {
	for _, item := range d.Roadmap {
		if item.ID == id {
			return item, true
		}
	}
	return RoadmapItem{}, false
}

// Client looks up a client by id.
func (d Dataset) Client(id string) (Client, bool) {
	for _, c := range d.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// GuestProgram looks up a guest program by id.
func (d Dataset) GuestProgram(id string) (GuestProgram, bool) {
	for _, gp := range d.GuestPrograms {
		if gp.ID == id {
			return gp, true
		}
	}
	return GuestProgram{}, false
}

// ZKVM looks up a zkVM by id.
func (d Dataset) ZKVM(id string) (ZKVM, bool) {
	for _, z := range d.ZKVMs {
		if z.ID == id {
			return z, true
		}
	}
	return ZKVM{}, false
}

// SecurityFor returns the security record of a zkVM.
func (d Dataset) SecurityFor(zkvmID string) (Security, bool) {
	for _, s := range d.Security {
		if s.ZKVMID == zkvmID {
			return s, true
		}
	}
	return Security{}, false
}

// ItemsByCategory returns the roadmap items of a category, most urgent first.
func (d Dataset) ItemsByCategory(categoryID string) []RoadmapItem {
	var items []RoadmapItem
	for _, item := range d.Roadmap {
		if item.Category == categoryID {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority.Rank() < items[j].Priority.Rank()
	})
	return items
}

// MilestonesByCategory returns the milestones of a category in declaration order.
func (d Dataset) MilestonesByCategory(categoryID string) []Milestone {
	var out []Milestone
	for _, m := range d.Milestones {
		if m.CategoryID == categoryID {
			out = append(out, m)
		}
	}
	return out
}

// GuestProgramsForClient resolves a client's guest program ids, skipping unknown ids.
func (d Dataset) GuestProgramsForClient(clientID string) []GuestProgram {
	c, ok := d.Client(clientID)
	if !ok {
		return nil
	}
	var out []GuestProgram
	for _, id := range c.GuestPrograms {
		if gp, ok := d.GuestProgram(id); ok {
			out = append(out, gp)
		}
	}
	return out
}

// GuestProgramsForZKVM lists guest programs that target a zkVM.
func (d Dataset) GuestProgramsForZKVM(zkvmID string) []GuestProgram {
	var out []GuestProgram
	for _, gp := range d.GuestPrograms {
		for _, id := range gp.ZKVMs {
			if id == zkvmID {
				out = append(out, gp)
				break
			}
		}
	}
	return out
}

// BenchmarksFor returns the benchmarks of a zkVM, fastest first.
func (d Dataset) BenchmarksFor(zkvmID string) []Benchmark {
	var out []Benchmark
	for _, b := range d.Benchmarks {
		if b.ZKVMID == zkvmID {
			out = append(out, b)
		}
	}
	sortBenchmarks(out)
	return out
}

// RankedBenchmarks returns every benchmark ordered by proving time.
func (d Dataset) RankedBenchmarks() []Benchmark {
	out := append([]Benchmark(nil), d.Benchmarks...)
	sortBenchmarks(out)
	return out
}

func sortBenchmarks(bs []Benchmark) {
	sort.SliceStable(bs, func(i, j int) bool {
		return bs[i].ProvingTime < bs[j].ProvingTime
	})
}

// Dependents returns the roadmap items that list id as a dependency.
func (d Dataset) Dependents(id string) []RoadmapItem {
	var out []RoadmapItem
	for _, item := range d.Roadmap {
		for _, dep := range item.Dependencies {
			if dep == id {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
