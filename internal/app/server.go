package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"zkevmsite/internal/content"
	"zkevmsite/internal/metrics"
	"zkevmsite/internal/tools/roadmap"
	"zkevmsite/internal/tracker"
)

// Server wires handlers, templates, and the content and tracker data together.
type Server struct {
	cfg       Config
	logger    *zap.Logger
	metrics   *metrics.Metrics
	templates map[string]*template.Template
	router    chi.Router
	renderer  *Renderer

	data  tracker.Dataset
	graph *roadmap.Graph
	size  roadmap.Size

	blog  *content.Store
	learn *content.Store
}

// Deps are the collaborators a Server needs. Metrics may be nil.
type Deps struct {
	Config  Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Data    tracker.Dataset
	Blog    *content.Store
	Learn   *content.Store
}

// NewServer constructs an HTTP handler serving the site. The stores should
// already be loaded; reloads are picked up through their OnReload hooks.
func NewServer(deps Deps) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &Server{
		cfg:       deps.Config,
		logger:    logger,
		metrics:   deps.Metrics,
		templates: tmpl,
		renderer:  NewRenderer(deps.Metrics),
		data:      deps.Data,
		graph:     roadmap.Build(deps.Data.Roadmap),
		blog:      deps.Blog,
		learn:     deps.Learn,
	}
	srv.size = srv.graph.Layout(roadmap.DefaultLayout)
	if len(srv.graph.Dangling) > 0 {
		logger.Warn("roadmap has unresolved dependencies", zap.Any("dangling", srv.graph.Dangling))
	}

	for _, store := range []*content.Store{deps.Blog, deps.Learn} {
		store.OnReload(func(n int, err error) {
			srv.metrics.ObserveReload(store.Name(), n, err)
			if err == nil {
				srv.renderer.Invalidate()
			}
		})
	}

	srv.router = srv.routes()
	return srv, nil
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/", s.handleHome)
	r.Get("/about", s.handleAbout)

	r.Route("/blog", func(r chi.Router) {
		r.Get("/", s.handleBlog)
		r.Get("/tag/{tag}", s.handleTag)
		r.Get("/{slug}", s.handlePost)
	})
	r.Get("/rss.xml", s.handleFeed)

	r.Route("/learn", func(r chi.Router) {
		r.Get("/", s.handleLearn)
		r.Get("/{slug}", s.handleChapter)
	})

	r.Route("/track", func(r chi.Router) {
		r.Use(s.errorBoundary)
		r.Get("/", s.handleTrack)
		r.Get("/roadmap", s.handleRoadmap)
		r.Get("/roadmap.json", s.handleRoadmapJSON)
		r.Get("/{category}", s.handleCategory)
	})
	r.Get("/tracker", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/track", http.StatusMovedPermanently)
	})

	r.Get("/clients", s.handleClients)
	r.Get("/clients/{id}", s.handleClient)
	r.Get("/zkvms", s.handleZKVMs)
	r.Get("/zkvms/{id}", s.handleZKVM)

	r.Get("/healthz", s.handleHealth)
	if s.cfg.MetricsEnabled && s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFiles()))))

	r.NotFound(s.handleNotFound)
	return r
}

type site struct {
	Title       string
	Description string
	URL         string
}

// page is the data every template receives; Data holds the page-specific part.
type page struct {
	Site        site
	Title       string
	Description string
	Path        string
	Data        any
}

func (s *Server) page(r *http.Request, title, description string, data any) page {
	return page{
		Site: site{
			Title:       s.cfg.SiteTitle,
			Description: s.cfg.SiteDescription,
			URL:         s.cfg.SiteURL,
		},
		Title:       title,
		Description: description,
		Path:        r.URL.Path,
		Data:        data,
	}
}

// render executes a page into a buffer first so a template failure never
// leaves a half-written response.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	tmpl, ok := s.templates[name]
	if !ok {
		s.logger.Error("unknown template", zap.String("template", name))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		s.logger.Error("render page",
			zap.String("template", name),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("write response", zap.Error(err))
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "notfound", s.page(r, "Not found", "", nil))
}

// renderError shows the 500 page used by the tracker error boundary.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusInternalServerError, "error", s.page(r, "Error", "", nil))
}

// notFoundOr maps content.ErrNotFound to the 404 page and anything else to a 500.
func (s *Server) notFoundOr(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, content.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	s.logger.Error("handle request", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// cacheFor marks responses that only change on deploy or content reload.
func cacheFor(w http.ResponseWriter, d time.Duration) {
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(d.Seconds())))
}
