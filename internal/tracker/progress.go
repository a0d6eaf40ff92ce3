package tracker

import "math"

// Progress counts milestone states over a checklist.
type Progress struct {
	Completed  int
	InProgress int
	Blocked    int
	Total      int
}

// Percent is the completed share rounded to a whole percent, 0 for an empty checklist.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
}

// NotStarted is whatever is left once the other states are counted.
func (p Progress) NotStarted() int {
	return p.Total - p.Completed - p.InProgress - p.Blocked
}

// Add sums two progress values.
func (p Progress) Add(o Progress) Progress {
	return Progress{
		Completed:  p.Completed + o.Completed,
		InProgress: p.InProgress + o.InProgress,
		Blocked:    p.Blocked + o.Blocked,
		Total:      p.Total + o.Total,
	}
}

// ProgressOf counts statuses against the milestone checklist. Status entries
// whose id is not on the checklist are ignored and missing entries count as
// not started.
func ProgressOf(statuses map[string]Status, checklist []CommonMilestone) Progress {
	p := Progress{Total: len(checklist)}
	for _, m := range checklist {
		switch statuses[m.ID].Normalize() {
		case StatusComplete:
			p.Completed++
		case StatusInProgress:
			p.InProgress++
		case StatusBlocked:
			p.Blocked++
		}
	}
	return p
}

// MilestoneProgress counts the states of category milestones.
func MilestoneProgress(ms []Milestone) Progress {
	p := Progress{Total: len(ms)}
	for _, m := range ms {
		switch m.Status.Normalize() {
		case StatusComplete:
			p.Completed++
		case StatusInProgress:
			p.InProgress++
		case StatusBlocked:
			p.Blocked++
		}
	}
	return p
}

// Percent is current/target rounded and clamped to [0,100].
func (m Metric) Percent() int {
	if m.Target <= 0 {
		return 0
	}
	pct := math.Round(m.Current / m.Target * 100)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return int(pct)
}

// ClientProgress is the client's checklist progress.
func (d Dataset) ClientProgress(c Client) Progress {
	return ProgressOf(c.MilestoneStatuses, d.ClientMilestones)
}

// GuestProgramProgress measures a guest program against the client checklist.
func (d Dataset) GuestProgramProgress(gp GuestProgram) Progress {
	return ProgressOf(gp.MilestoneStatuses, d.ClientMilestones)
}

// ZKVMProgress is the zkVM's checklist progress.
func (d Dataset) ZKVMProgress(z ZKVM) Progress {
	return ProgressOf(z.MilestoneStatuses, d.ZKVMMilestones)
}

// Summary aggregates a category for its dashboard card.
type Summary struct {
	Category   Category
	Milestones Progress
	Items      map[Status]int
	ItemCount  int
}

// CategorySummary aggregates milestone progress and roadmap item states for a category.
func (d Dataset) CategorySummary(id string) (Summary, bool) {
	c, ok := d.Category(id)
	if !ok {
		return Summary{}, false
	}
	s := Summary{
		Category:   c,
		Milestones: MilestoneProgress(d.MilestonesByCategory(id)),
		Items:      make(map[Status]int),
	}
	for _, item := range d.Roadmap {
		if item.Category != id {
			continue
		}
		s.Items[item.Status.Normalize()]++
		s.ItemCount++
	}
	return s, true
}

// Summaries returns a summary per category in declaration order.
func (d Dataset) Summaries() []Summary {
	out := make([]Summary, 0, len(d.Categories))
	for _, c := range d.Categories {
		if s, ok := d.CategorySummary(c.ID); ok {
			out = append(out, s)
		}
	}
	return out
}

// Overall sums the milestone progress of every category.
func (d Dataset) Overall() Progress {
	return MilestoneProgress(d.Milestones)
}
