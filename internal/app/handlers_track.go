package app

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"zkevmsite/internal/components"
	"zkevmsite/internal/tools/roadmap"
	"zkevmsite/internal/tracker"
)

// Categories whose pages carry extra sections.
const (
	benchmarkCategory = "real-time-proving"
	securityCategory  = "security"
)

type clientRow struct {
	Client   tracker.Client
	Progress tracker.Progress
}

type zkvmRow struct {
	ZKVM     tracker.ZKVM
	Progress tracker.Progress
}

func (s *Server) clientRows() []clientRow {
	rows := make([]clientRow, 0, len(s.data.Clients))
	for _, c := range s.data.Clients {
		rows = append(rows, clientRow{Client: c, Progress: s.data.ClientProgress(c)})
	}
	return rows
}

func (s *Server) zkvmRows() []zkvmRow {
	rows := make([]zkvmRow, 0, len(s.data.ZKVMs))
	for _, z := range s.data.ZKVMs {
		rows = append(rows, zkvmRow{ZKVM: z, Progress: s.data.ZKVMProgress(z)})
	}
	return rows
}

func (s *Server) zkvmName(id string) string {
	if z, ok := s.data.ZKVM(id); ok {
		return z.Name
	}
	return id
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Overall   tracker.Progress
		Summaries []tracker.Summary
		Clients   []clientRow
		ZKVMs     []zkvmRow
	}{
		Overall:   s.data.Overall(),
		Summaries: s.data.Summaries(),
		Clients:   s.clientRows(),
		ZKVMs:     s.zkvmRows(),
	}
	s.render(w, r, http.StatusOK, "track", s.page(r, "Dashboard", "", data))
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	focus := r.URL.Query().Get("focus")
	highlight := s.graph.Reset()
	if _, ok := s.graph.Node(focus); ok {
		highlight = s.graph.Highlight(focus)
	} else {
		focus = ""
	}

	data := struct {
		Focus    string
		Graph    template.HTML
		Dangling []roadmap.Dangling
	}{
		Focus:    focus,
		Graph:    components.Markup(components.RoadmapSVG(s.graph, s.size, roadmap.DefaultLayout, highlight)),
		Dangling: s.graph.Dangling,
	}
	s.render(w, r, http.StatusOK, "roadmap", s.page(r, "Roadmap", "", data))
}

func (s *Server) handleRoadmapJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := roadmap.Export(s.data, "")
	if err != nil {
		s.notFoundOr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

type securityRow struct {
	ZKVM  tracker.ZKVM
	Panel template.HTML
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	summary, ok := s.data.CategorySummary(chi.URLParam(r, "category"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	id := summary.Category.ID

	data := struct {
		Summary    tracker.Summary
		Milestones template.HTML
		Items      template.HTML
		Benchmarks template.HTML
		Security   []securityRow
	}{
		Summary:    summary,
		Milestones: components.Markup(components.MilestoneTable(s.data.MilestonesByCategory(id))),
		Items:      components.Markup(components.RoadmapItemList(s.data.ItemsByCategory(id), s.data)),
	}
	if id == benchmarkCategory {
		data.Benchmarks = components.Markup(components.BenchmarkTable(s.data.RankedBenchmarks(), s.zkvmName))
	}
	if id == securityCategory {
		for _, z := range s.data.ZKVMs {
			if sec, ok := s.data.SecurityFor(z.ID); ok {
				data.Security = append(data.Security, securityRow{ZKVM: z, Panel: components.Markup(components.SecurityPanel(sec))})
			}
		}
	}
	s.render(w, r, http.StatusOK, "category", s.page(r, summary.Category.Name, summary.Category.Description, data))
}

func (s *Server) handleClients(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Clients []clientRow
	}{
		Clients: s.clientRows(),
	}
	s.render(w, r, http.StatusOK, "clients", s.page(r, "Clients", "", data))
}

func (s *Server) handleClient(w http.ResponseWriter, r *http.Request) {
	c, ok := s.data.Client(chi.URLParam(r, "id"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	data := struct {
		Client        tracker.Client
		Progress      tracker.Progress
		Links         template.HTML
		Checklist     template.HTML
		GuestPrograms template.HTML
	}{
		Client:        c,
		Progress:      s.data.ClientProgress(c),
		Links:         components.Markup(components.ProjectLinks(c.Repository, c.Website)),
		Checklist:     components.Markup(components.MilestoneChecklist(s.data.ClientMilestones, c.MilestoneStatuses)),
		GuestPrograms: components.Markup(components.GuestProgramList(s.data.GuestProgramsForClient(c.ID), s.data)),
	}
	s.render(w, r, http.StatusOK, "client", s.page(r, c.Name, c.Description, data))
}

func (s *Server) handleZKVMs(w http.ResponseWriter, r *http.Request) {
	data := struct {
		ZKVMs      []zkvmRow
		Benchmarks template.HTML
	}{
		ZKVMs:      s.zkvmRows(),
		Benchmarks: components.Markup(components.BenchmarkTable(s.data.RankedBenchmarks(), s.zkvmName)),
	}
	s.render(w, r, http.StatusOK, "zkvms", s.page(r, "zkVMs", "", data))
}

func (s *Server) handleZKVM(w http.ResponseWriter, r *http.Request) {
	z, ok := s.data.ZKVM(chi.URLParam(r, "id"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	data := struct {
		ZKVM          tracker.ZKVM
		Progress      tracker.Progress
		Links         template.HTML
		Checklist     template.HTML
		Security      template.HTML
		Benchmarks    template.HTML
		GuestPrograms template.HTML
	}{
		ZKVM:          z,
		Progress:      s.data.ZKVMProgress(z),
		Links:         components.Markup(components.ProjectLinks(z.Repository, z.Website)),
		Checklist:     components.Markup(components.MilestoneChecklist(s.data.ZKVMMilestones, z.MilestoneStatuses)),
		Benchmarks:    components.Markup(components.BenchmarkTable(s.data.BenchmarksFor(z.ID), s.zkvmName)),
		GuestPrograms: components.Markup(components.GuestProgramList(s.data.GuestProgramsForZKVM(z.ID), s.data)),
	}
	if sec, ok := s.data.SecurityFor(z.ID); ok {
		data.Security = components.Markup(components.SecurityPanel(sec))
	}
	s.render(w, r, http.StatusOK, "zkvm", s.page(r, z.Name, z.Description, data))
}
