// Package components holds the HTML widgets shared by the tracker, blog and
// learn pages.
package components

import (
	"fmt"
	"html/template"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"zkevmsite/internal/tracker"
)

// Markup renders a node for embedding in an html/template page.
func Markup(n g.Node) template.HTML {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return template.HTML(template.HTMLEscapeString(err.Error()))
	}
	return template.HTML(b.String())
}

func statusClass(s tracker.Status) string {
	return "status status-" + string(s.Normalize())
}

// StatusBadge shows a status as a coloured pill.
func StatusBadge(s tracker.Status) g.Node {
	return Span(Class(statusClass(s)), g.Text(s.Label()))
}

// PriorityBadge shows a roadmap priority.
func PriorityBadge(p tracker.Priority) g.Node {
	label := string(p)
	if label == "" {
		label = string(tracker.PriorityLow)
	}
	return Span(Class("priority priority-"+label), g.Text(label))
}

// ProgressBar draws completed work as a filled bar with the rounded
// percentage and the raw counts next to it.
func ProgressBar(p tracker.Progress) g.Node {
	pct := p.Percent()
	return Div(
		Class("progress"),
		g.Attr("role", "progressbar"),
		g.Attr("aria-valuemin", "0"),
		g.Attr("aria-valuemax", "100"),
		g.Attr("aria-valuenow", fmt.Sprint(pct)),
		Div(
			Class("progress-track"),
			Div(Class("progress-fill"), g.Attr("style", fmt.Sprintf("width: %d%%", pct))),
		),
		Span(Class("progress-label"), g.Textf("%d%% (%d/%d)", pct, p.Completed, p.Total)),
	)
}

// MetricBar shows a milestone metric against its target.
func MetricBar(m tracker.Metric) g.Node {
	pct := m.Percent()
	return Div(
		Class("metric"),
		Div(
			Class("progress-track"),
			Div(Class("progress-fill"), g.Attr("style", fmt.Sprintf("width: %d%%", pct))),
		),
		Span(Class("metric-label"), g.Textf("%s / %s %s", formatNumber(m.Current), formatNumber(m.Target), m.Unit)),
	)
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
