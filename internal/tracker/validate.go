package tracker

import (
	"fmt"
	"sort"
)

// IssueKind classifies a dangling or suspicious reference.
type IssueKind string

const (
	IssueDanglingDependency IssueKind = "dangling-dependency"
	IssueSelfDependency     IssueKind = "self-dependency"
	IssueUnknownCategory    IssueKind = "unknown-category"
	IssueUnknownMilestone   IssueKind = "unknown-milestone"
	IssueUnknownClient      IssueKind = "unknown-client"
	IssueUnknownZKVM        IssueKind = "unknown-zkvm"
	IssueUnknownGuest       IssueKind = "unknown-guest-program"
)

// Issue is one broken cross-reference. Rendering never depends on these;
// they are reported so authors can fix the data.
type Issue struct {
	Kind    IssueKind
	Subject string
	Ref     string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s references %q", i.Kind, i.Subject, i.Ref)
}

// Validate walks every informal string key in the dataset and reports the
// ones that do not resolve.
func Validate(d Dataset) []Issue {
	var issues []Issue
	add := func(kind IssueKind, subject, ref string) {
		issues = append(issues, Issue{Kind: kind, Subject: subject, Ref: ref})
	}

	categoryIDs := idSet(len(d.Categories), func(i int) string { return d.Categories[i].ID })
	itemIDs := idSet(len(d.Roadmap), func(i int) string { return d.Roadmap[i].ID })
	clientIDs := idSet(len(d.Clients), func(i int) string { return d.Clients[i].ID })
	zkvmIDs := idSet(len(d.ZKVMs), func(i int) string { return d.ZKVMs[i].ID })
	guestIDs := idSet(len(d.GuestPrograms), func(i int) string { return d.GuestPrograms[i].ID })
	clientMilestoneIDs := idSet(len(d.ClientMilestones), func(i int) string { return d.ClientMilestones[i].ID })
	zkvmMilestoneIDs := idSet(len(d.ZKVMMilestones), func(i int) string { return d.ZKVMMilestones[i].ID })

	for _, m := range d.Milestones {
		if _, ok := categoryIDs[m.CategoryID]; !ok {
			add(IssueUnknownCategory, "milestone "+m.ID, m.CategoryID)
		}
	}

	for _, item := range d.Roadmap {
		subject := "roadmap item " + item.ID
		if _, ok := categoryIDs[item.Category]; !ok {
			add(IssueUnknownCategory, subject, item.Category)
		}
		for _, dep := range item.Dependencies {
			if dep == item.ID {
				add(IssueSelfDependency, subject, dep)
				continue
			}
			if _, ok := itemIDs[dep]; !ok {
				add(IssueDanglingDependency, subject, dep)
			}
		}
		for _, ref := range item.RelatedClients {
			if _, ok := clientIDs[ref]; !ok {
				add(IssueUnknownClient, subject, ref)
			}
		}
		for _, ref := range item.RelatedZKVMs {
			if _, ok := zkvmIDs[ref]; !ok {
				add(IssueUnknownZKVM, subject, ref)
			}
		}
	}

	for _, c := range d.Clients {
		subject := "client " + c.ID
		for _, id := range sortedKeys(c.MilestoneStatuses) {
			if _, ok := clientMilestoneIDs[id]; !ok {
				add(IssueUnknownMilestone, subject, id)
			}
		}
		for _, gp := range c.GuestPrograms {
			if _, ok := guestIDs[gp]; !ok {
				add(IssueUnknownGuest, subject, gp)
			}
		}
	}

	for _, gp := range d.GuestPrograms {
		subject := "guest program " + gp.ID
		if _, ok := clientIDs[gp.ClientID]; !ok {
			add(IssueUnknownClient, subject, gp.ClientID)
		}
		for _, id := range sortedKeys(gp.MilestoneStatuses) {
			if _, ok := clientMilestoneIDs[id]; !ok {
				add(IssueUnknownMilestone, subject, id)
			}
		}
		for _, ref := range gp.ZKVMs {
			if _, ok := zkvmIDs[ref]; !ok {
				add(IssueUnknownZKVM, subject, ref)
			}
		}
	}

	for _, z := range d.ZKVMs {
		for _, id := range sortedKeys(z.MilestoneStatuses) {
			if _, ok := zkvmMilestoneIDs[id]; !ok {
				add(IssueUnknownMilestone, "zkvm "+z.ID, id)
			}
		}
	}

	for _, s := range d.Security {
		if _, ok := zkvmIDs[s.ZKVMID]; !ok {
			add(IssueUnknownZKVM, "security record", s.ZKVMID)
		}
	}
	for _, b := range d.Benchmarks {
		if _, ok := zkvmIDs[b.ZKVMID]; !ok {
			add(IssueUnknownZKVM, "benchmark "+b.Workload, b.ZKVMID)
		}
	}

	return issues
}

func idSet(n int, id func(int) string) map[string]struct{} {
	set := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		set[id(i)] = struct{}{}
	}
	return set
}

func sortedKeys(m map[string]Status) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
