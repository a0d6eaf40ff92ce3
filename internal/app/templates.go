package app

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"zkevmsite/internal/components"
	"zkevmsite/internal/content"
	"zkevmsite/internal/tracker"
)

// templateFS contains the HTML templates bundled with the binary.
//
//go:embed templates/*
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// contentFS holds the posts and chapters shipped with the binary. A
// CONTENT_DIR on disk overrides them slug by slug.
//
//go:embed content
var contentFS embed.FS

// EmbeddedContent exposes the bundled content tree.
func EmbeddedContent() fs.FS {
	return contentFS
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var pageTemplates = []string{
	"home", "about",
	"blog", "post",
	"learn", "chapter",
	"track", "roadmap", "category",
	"clients", "client",
	"zkvms", "zkvm",
	"notfound", "error",
}

var templateFuncs = template.FuncMap{
	"progress":     func(p tracker.Progress) template.HTML { return components.Markup(components.ProgressBar(p)) },
	"categoryCard": func(s tracker.Summary) template.HTML { return components.Markup(components.CategoryCard(s)) },
	"clientCard": func(c tracker.Client, p tracker.Progress) template.HTML {
		return components.Markup(components.ClientCard(c, p))
	},
	"zkvmCard": func(z tracker.ZKVM, p tracker.Progress) template.HTML {
		return components.Markup(components.ZKVMCard(z, p))
	},
	"postCard": func(p content.Post, base string) template.HTML {
		return components.Markup(components.PostCard(p, base))
	},
	"tagList": func(tags []string) template.HTML {
		if len(tags) == 0 {
			return ""
		}
		return components.Markup(components.TagList(tags))
	},
	"navActive": func(path, prefix string) bool {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	},
}

// parseTemplates builds one template set per page, each layered on the shared layout.
func parseTemplates() (map[string]*template.Template, error) {
	out := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS,
			"templates/layout.gohtml",
			"templates/"+name+".gohtml",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		out[name] = tmpl
	}
	return out, nil
}
