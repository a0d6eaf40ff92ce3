package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"zkevmsite/internal/content"
	"zkevmsite/internal/tools/roadmap"
	"zkevmsite/internal/tracker"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestProgressBarShowsRoundedPercent(t *testing.T) {
	out := render(t, ProgressBar(tracker.Progress{Completed: 2, Total: 3}))
	assert.Contains(t, out, `aria-valuenow="67"`)
	assert.Contains(t, out, "width: 67%")
	assert.Contains(t, out, "67% (2/3)")

	out = render(t, ProgressBar(tracker.Progress{}))
	assert.Contains(t, out, "0% (0/0)")
}

func TestStatusBadgeNormalizesLegacyValues(t *testing.T) {
	out := render(t, StatusBadge(tracker.Status("done")))
	assert.Contains(t, out, `class="status status-complete"`)
	assert.Contains(t, out, "Complete")
}

func TestDependencyListFallsBackToPlainLabel(t *testing.T) {
	d := tracker.Dataset{Roadmap: []tracker.RoadmapItem{
		{ID: "base", Title: "Base layer"},
		{ID: "top", Title: "Top", Dependencies: []string{"base", "ghost-item"}},
	}}
	top, ok := d.RoadmapItem("top")
	require.True(t, ok)

	out := render(t, DependencyList(top, d))
	assert.Contains(t, out, `<a class="dependency" href="/track/roadmap?focus=base">Base layer</a>`)
	assert.Contains(t, out, `<span class="dependency dependency-missing">ghost-item</span>`)

	assert.Nil(t, DependencyList(d.Roadmap[0], d))
}

func TestRoadmapSVGCarriesAncestorsAndOpacity(t *testing.T) {
	items := []tracker.RoadmapItem{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B", Dependencies: []string{"a"}},
		{ID: "c", Title: "C"},
	}
	gr := roadmap.Build(items)
	size := gr.Layout(roadmap.DefaultLayout)

	out := render(t, RoadmapSVG(gr, size, roadmap.DefaultLayout, gr.Highlight("b")))
	assert.Contains(t, out, `data-focus="b"`)
	assert.Contains(t, out, `data-id="b" data-ancestors="a b"`)
	assert.Contains(t, out, `data-id="c" data-ancestors="c"`)
	assert.Contains(t, out, `data-source="a" data-target="b"`)
	assert.Equal(t, 1, strings.Count(out, `opacity="0.2"`))

	out = render(t, RoadmapSVG(gr, size, roadmap.DefaultLayout, gr.Reset()))
	assert.NotContains(t, out, `opacity="0.2"`)
	assert.NotContains(t, out, "data-focus")
}

func TestTitlesAreEscaped(t *testing.T) {
	p := content.Post{Slug: "a-b", Title: "A & B <script>", ReadingTime: 2, Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}
	out := render(t, PostCard(p, "/blog"))
	assert.Contains(t, out, "A &amp; B &lt;script&gt;")
	assert.Contains(t, out, `datetime="2025-01-02"`)
	assert.Contains(t, out, "2 min read")
}

func TestMilestoneChecklistDefaultsToNotStarted(t *testing.T) {
	checklist := []tracker.CommonMilestone{{ID: "one", Name: "One"}, {ID: "two", Name: "Two"}}
	out := render(t, MilestoneChecklist(checklist, map[string]tracker.Status{"one": tracker.StatusComplete}))
	assert.Equal(t, 1, strings.Count(out, `class="status status-complete"`))
	assert.Contains(t, out, "Not started")
}

func TestGuestProgramListUnknownTarget(t *testing.T) {
	d := tracker.Dataset{ZKVMs: []tracker.ZKVM{{ID: "sp1", Name: "SP1"}}}
	out := render(t, GuestProgramList([]tracker.GuestProgram{{Name: "reth", ZKVMs: []string{"sp1", "mystery"}}}, d))
	assert.Contains(t, out, `href="/zkvms/sp1"`)
	assert.Contains(t, out, `<span class="tag tag-missing">mystery</span>`)
}

func TestGuestProgramListShowsChecklistProgress(t *testing.T) {
	d := tracker.Dataset{ClientMilestones: []tracker.CommonMilestone{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}}
	gp := tracker.GuestProgram{Name: "reth", MilestoneStatuses: map[string]tracker.Status{
		"a": tracker.StatusComplete,
		"b": tracker.StatusInProgress,
	}}

	out := render(t, GuestProgramList([]tracker.GuestProgram{gp}, d))
	assert.Contains(t, out, `aria-valuenow="25"`)
	assert.Contains(t, out, "25% (1/4)")
}

func TestSecurityPanel(t *testing.T) {
	sec, ok := tracker.Default().SecurityFor("sp1")
	require.True(t, ok)
	out := render(t, SecurityPanel(sec))
	assert.Contains(t, out, "Provable security")
	assert.Contains(t, out, `rel="noopener"`)
}

func TestMarkup(t *testing.T) {
	assert.Equal(t, `<span class="priority priority-high">high</span>`, string(Markup(PriorityBadge(tracker.PriorityHigh))))
}
