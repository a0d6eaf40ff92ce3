package app

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
	"golang.org/x/sync/singleflight"

	"zkevmsite/internal/metrics"
)

// Renderer converts markdown bodies to HTML. Concurrent renders of the same
// document share one conversion and the result is cached until Invalidate.
type Renderer struct {
	md      goldmark.Markdown
	metrics *metrics.Metrics
	group   singleflight.Group

	mu         sync.RWMutex
	cache      map[string]template.HTML
	generation uint64
}

// NewRenderer configures goldmark with GitHub flavoured markdown, footnotes
// and heading anchors. Raw HTML in posts is not passed through.
func NewRenderer(m *metrics.Metrics) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithASTTransformers(util.Prioritized(linkRewriter{}, 500)),
			),
		),
		metrics: m,
		cache:   map[string]template.HTML{},
	}
}

// Render returns the HTML for a document. key identifies the document;
// base is the route prefix used for relative .md links.
func (r *Renderer) Render(key, base, body string) (template.HTML, error) {
	r.mu.RLock()
	html, ok := r.cache[key]
	gen := r.generation
	r.mu.RUnlock()
	if ok {
		r.metrics.CacheHit()
		return html, nil
	}
	r.metrics.CacheMiss()

	v, err, _ := r.group.Do(fmt.Sprintf("%d/%s", gen, key), func() (any, error) {
		pc := parser.NewContext()
		pc.Set(linkBaseKey, base)

		var buf bytes.Buffer
		if err := r.md.Convert([]byte(body), &buf, parser.WithContext(pc)); err != nil {
			return nil, fmt.Errorf("render %s: %w", key, err)
		}
		out := template.HTML(buf.String())

		r.mu.Lock()
		// A reload while converting makes this result stale.
		if r.generation == gen {
			r.cache[key] = out
		}
		r.mu.Unlock()
		return out, nil
	})
	if err != nil {
		return "", err
	}
	return v.(template.HTML), nil
}

// Invalidate drops every cached render.
func (r *Renderer) Invalidate() {
	r.mu.Lock()
	r.cache = map[string]template.HTML{}
	r.generation++
	r.mu.Unlock()
}

// Cached reports how many documents are cached.
func (r *Renderer) Cached() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}
