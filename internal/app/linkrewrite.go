package app

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// linkBaseKey carries the route prefix of the document being converted.
var linkBaseKey = parser.NewContextKey()

// linkRewriter points relative links at sibling markdown files to their
// route under the document's base and marks external links rel="noopener".
type linkRewriter struct{}

func (linkRewriter) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	base, _ := pc.Get(linkBaseKey).(string)
	source := reader.Source()

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch link := n.(type) {
		case *ast.Link:
			dest := string(link.Destination)
			if isExternal(dest) {
				link.SetAttributeString("rel", []byte("noopener"))
			} else if route, ok := markdownRoute(dest, base); ok {
				link.Destination = []byte(route)
			}
		case *ast.AutoLink:
			if isExternal(string(link.URL(source))) {
				link.SetAttributeString("rel", []byte("noopener"))
			}
		}
		return ast.WalkContinue, nil
	})
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// markdownRoute maps "other.md", "./other.md#part" or "../learn/other.md" to
// the canonical route of that document.
func markdownRoute(href, base string) (string, bool) {
	if strings.HasPrefix(href, "/") || strings.Contains(href, "://") {
		return "", false
	}

	fragment := ""
	if idx := strings.Index(href, "#"); idx >= 0 {
		fragment = href[idx:]
		href = href[:idx]
	}
	if !strings.HasSuffix(href, ".md") {
		return "", false
	}
	href = strings.TrimPrefix(strings.TrimSuffix(href, ".md"), "./")

	// ../learn/chapter.md crosses into another collection.
	if rest, ok := strings.CutPrefix(href, "../"); ok {
		collection, slug, found := strings.Cut(rest, "/")
		if !found || slug == "" || strings.Contains(slug, "/") {
			return "", false
		}
		if route, known := collectionRoutes[collection]; known {
			return route + "/" + slug + fragment, true
		}
		return "", false
	}
	if href == "" || strings.Contains(href, "/") {
		return "", false
	}
	return base + "/" + href + fragment, true
}

// collectionRoutes maps content directory names to their URL prefix.
var collectionRoutes = map[string]string{
	"posts": "/blog",
	"blog":  "/blog",
	"learn": "/learn",
}
