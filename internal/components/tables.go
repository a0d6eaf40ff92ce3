package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"zkevmsite/internal/tracker"
)

// MilestoneTable lists a category's milestones with status, metric and the
// verification record when one exists.
func MilestoneTable(ms []tracker.Milestone) g.Node {
	if len(ms) == 0 {
		return P(Class("empty"), g.Text("No milestones yet."))
	}
	return Table(
		Class("milestones"),
		THead(Tr(Th(g.Text("Milestone")), Th(g.Text("Status")), Th(g.Text("Progress")), Th(g.Text("Verified")))),
		TBody(g.Map(ms, func(m tracker.Milestone) g.Node {
			return Tr(
				ID("milestone-"+m.ID),
				Td(Strong(g.Text(m.Name)), P(g.Text(m.Description))),
				Td(StatusBadge(m.Status)),
				Td(g.Iff(m.Metric != nil, func() g.Node { return MetricBar(*m.Metric) })),
				Td(verification(m.Verification)),
			)
		})),
	)
}

func verification(v *tracker.Verification) g.Node {
	if v == nil {
		return Span(Class("muted"), g.Text("Unverified"))
	}
	label := v.Verifier
	if v.Date != "" {
		label = fmt.Sprintf("%s, %s", v.Verifier, v.Date)
	}
	if v.Source == "" {
		return g.Text(label)
	}
	return externalLink(v.Source, label)
}

// MilestoneChecklist shows a shared checklist against one project's statuses.
// Milestones the project has no entry for render as not started.
func MilestoneChecklist(checklist []tracker.CommonMilestone, statuses map[string]tracker.Status) g.Node {
	return Ul(
		Class("checklist"),
		g.Map(checklist, func(m tracker.CommonMilestone) g.Node {
			status := statuses[m.ID].Normalize()
			return Li(
				Class("checklist-item "+statusClass(status)),
				StatusBadge(status),
				Span(Class("checklist-name"), g.Text(m.Name)),
				g.If(m.Description != "", P(Class("muted"), g.Text(m.Description))),
			)
		}),
	)
}

// AuditTable lists audits and their findings by severity.
func AuditTable(audits []tracker.Audit) g.Node {
	if len(audits) == 0 {
		return P(Class("empty"), g.Text("No published audits."))
	}
	return Table(
		Class("audits"),
		THead(Tr(
			Th(g.Text("Firm")), Th(g.Text("Date")), Th(g.Text("Scope")),
			Th(g.Text("Critical")), Th(g.Text("High")), Th(g.Text("Medium")), Th(g.Text("Low")),
		)),
		TBody(g.Map(audits, func(a tracker.Audit) g.Node {
			firm := g.Text(a.Firm)
			if a.ReportURL != "" {
				firm = externalLink(a.ReportURL, a.Firm)
			}
			return Tr(
				Td(firm), Td(g.Text(a.Date)), Td(g.Text(a.Scope)),
				Td(g.Textf("%d", a.Findings.Critical)),
				Td(g.Textf("%d", a.Findings.High)),
				Td(g.Textf("%d", a.Findings.Medium)),
				Td(g.Textf("%d", a.Findings.Low)),
			)
		})),
	)
}

// SecurityPanel summarises a zkVM's security record.
func SecurityPanel(s tracker.Security) g.Node {
	return Div(
		Class("security"),
		Dl(
			Dt(g.Text("Provable security")), Dd(bits(s.ProvableBits)),
			Dt(g.Text("Conjectured security")), Dd(bits(s.ConjecturedBits)),
			Dt(g.Text("Formal verification")), Dd(StatusBadge(s.FormalVerification)),
			g.If(s.BugBountyURL != "", g.Group{Dt(g.Text("Bug bounty")), Dd(externalLink(s.BugBountyURL, "Program"))}),
		),
		AuditTable(s.Audits),
	)
}

func bits(n int) g.Node {
	if n <= 0 {
		return Span(Class("muted"), g.Text("Unknown"))
	}
	return g.Textf("%d bits", n)
}

// BenchmarkTable ranks proving runs; name resolves a zkVM id to its display name.
func BenchmarkTable(bs []tracker.Benchmark, name func(string) string) g.Node {
	if len(bs) == 0 {
		return P(Class("empty"), g.Text("No benchmarks reported."))
	}
	return Table(
		Class("benchmarks"),
		THead(Tr(
			Th(g.Text("zkVM")), Th(g.Text("Workload")), Th(g.Text("Proving time")),
			Th(g.Text("Hardware")), Th(g.Text("Cost / proof")), Th(g.Text("Date")),
		)),
		TBody(g.Map(bs, func(b tracker.Benchmark) g.Node {
			return Tr(
				Td(A(Href("/zkvms/"+b.ZKVMID), g.Text(name(b.ZKVMID)))),
				Td(g.Text(b.Workload)),
				Td(g.Textf("%.1f s", b.ProvingTime)),
				Td(g.Text(b.Hardware)),
				Td(g.If(b.CostPerProof > 0, g.Textf("$%.3f", b.CostPerProof))),
				Td(g.Text(b.Date)),
			)
		})),
	)
}

func externalLink(href, label string) g.Node {
	return A(Href(href), Rel("noopener"), Target("_blank"), g.Text(label))
}
