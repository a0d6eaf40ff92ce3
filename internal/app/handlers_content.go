package app

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"zkevmsite/internal/components"
	"zkevmsite/internal/content"
	"zkevmsite/internal/feed"
	"zkevmsite/internal/tracker"
)

const (
	latestOnHome = 5
	relatedPosts = 3
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Intro     template.HTML
		Featured  []content.Post
		Latest    []content.Post
		Overall   tracker.Progress
		Summaries []tracker.Summary
	}{
		Intro:     homeIntroHTML(),
		Featured:  s.blog.Featured(),
		Latest:    s.blog.Latest(latestOnHome),
		Overall:   s.data.Overall(),
		Summaries: s.data.Summaries(),
	}
	s.render(w, r, http.StatusOK, "home", s.page(r, "", "", data))
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Team template.HTML
	}{
		Team: components.Markup(components.TeamGrid(s.data.Team)),
	}
	s.render(w, r, http.StatusOK, "about", s.page(r, "About", "", data))
}

type blogData struct {
	Tag   string
	Posts []content.Post
	Tags  []content.TagCount
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	data := blogData{Posts: s.blog.Posts(), Tags: s.blog.Tags()}
	s.render(w, r, http.StatusOK, "blog", s.page(r, "Blog", "", data))
}

func (s *Server) handleTag(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "tag")
	key := content.TagKey(raw)
	if key != raw {
		http.Redirect(w, r, "/blog/tag/"+key, http.StatusMovedPermanently)
		return
	}

	posts := s.blog.ByTag(key)
	if len(posts) == 0 {
		s.handleNotFound(w, r)
		return
	}

	title := key
	for _, tc := range s.blog.Tags() {
		if tc.Key == key {
			title = tc.Tag
			break
		}
	}
	data := blogData{Tag: key, Posts: posts, Tags: s.blog.Tags()}
	s.render(w, r, http.StatusOK, "blog", s.page(r, "Posts tagged "+title, "", data))
}

type articleData struct {
	Post    content.Post
	Body    template.HTML
	Related []content.Post
	Prev    *content.Post
	Next    *content.Post
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !content.ValidSlug(slug) {
		s.handleNotFound(w, r)
		return
	}

	p, err := s.blog.Post(slug)
	if err != nil {
		s.notFoundOr(w, r, err)
		return
	}
	body, err := s.renderer.Render("blog/"+p.Slug, "/blog", p.Body)
	if err != nil {
		s.notFoundOr(w, r, err)
		return
	}

	data := articleData{Post: p, Body: body, Related: s.blog.Related(p, relatedPosts)}
	s.render(w, r, http.StatusOK, "post", s.page(r, p.Title, p.Excerpt, data))
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	ch := feed.Channel{
		Title:       s.cfg.SiteTitle,
		Link:        s.cfg.SiteURL,
		Description: s.cfg.SiteDescription,
	}

	var buf bytes.Buffer
	if err := feed.Write(&buf, ch, s.blog.Posts()); err != nil {
		s.logger.Error("render feed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", feed.ContentType)
	cacheFor(w, 10*time.Minute)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleLearn(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Chapters []content.Post
	}{
		Chapters: s.learn.Ordered(),
	}
	s.render(w, r, http.StatusOK, "learn", s.page(r, "Learn", "", data))
}

func (s *Server) handleChapter(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !content.ValidSlug(slug) {
		s.handleNotFound(w, r)
		return
	}

	p, err := s.learn.Post(slug)
	if err != nil {
		s.notFoundOr(w, r, err)
		return
	}
	body, err := s.renderer.Render("learn/"+p.Slug, "/learn", p.Body)
	if err != nil {
		s.notFoundOr(w, r, err)
		return
	}

	prev, next := s.learn.Adjacent(p.Slug)
	data := articleData{Post: p, Body: body, Prev: prev, Next: next}
	s.render(w, r, http.StatusOK, "chapter", s.page(r, p.Title, p.Excerpt, data))
}
