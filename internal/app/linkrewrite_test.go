package app

import (
	"strings"
	"testing"
)

func renderLinks(t *testing.T, markdown, base string) string {
	t.Helper()
	out, err := NewRenderer(nil).Render("links", base, markdown)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	return string(out)
}

func TestRewriteLinksMapsMarkdownFiles(t *testing.T) {
	content := "[Other](other.md), [Part](./part.md#proofs) and [Why](../learn/why-zkevm.md)"

	result := renderLinks(t, content, "/blog")

	for _, target := range []string{"/blog/other", "/blog/part#proofs", "/learn/why-zkevm"} {
		if !hasLinkTo(result, target) {
			t.Fatalf("expected link to %s: %s", target, result)
		}
	}
	if hasLinkTo(result, "other.md") {
		t.Fatalf("markdown link was not rewritten: %s", result)
	}
}

func TestRewriteLinksMarksExternalLinks(t *testing.T) {
	content := "[Ethproofs](https://ethproofs.org) [Dashboard](/track) and https://github.com/succinctlabs/sp1"

	result := renderLinks(t, content, "/blog")

	if want := `<a href="https://ethproofs.org" rel="noopener">`; !contains(result, want) {
		t.Fatalf("external link not marked: %s", result)
	}
	if want := `<a href="https://github.com/succinctlabs/sp1" rel="noopener">`; !contains(result, want) {
		t.Fatalf("autolink not marked: %s", result)
	}
	if want := `<a href="/track">`; !contains(result, want) {
		t.Fatalf("absolute link changed: %s", result)
	}
}

func TestRewriteLinksUsesDocumentBase(t *testing.T) {
	r := NewRenderer(nil)
	blog, err := r.Render("blog/a", "/blog", "[next](next.md)")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	learn, err := r.Render("learn/a", "/learn", "[next](next.md)")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !hasLinkTo(string(blog), "/blog/next") || !hasLinkTo(string(learn), "/learn/next") {
		t.Fatalf("base not applied per document: %s / %s", blog, learn)
	}
}

func TestMarkdownRoute(t *testing.T) {
	tests := []struct {
		href  string
		route string
		ok    bool
	}{
		{"intro.md", "/learn/intro", true},
		{"./intro.md#top", "/learn/intro#top", true},
		{"../posts/launch.md", "/blog/launch", true},
		{"../blog/launch.md", "/blog/launch", true},
		{"../unknown/launch.md", "", false},
		{"../learn/nested/deep.md", "", false},
		{"nested/deep.md", "", false},
		{"/learn/intro.md", "", false},
		{"image.png", "", false},
		{"#section", "", false},
		{".md", "", false},
	}

	for _, tt := range tests {
		route, ok := markdownRoute(tt.href, "/learn")
		if ok != tt.ok || route != tt.route {
			t.Fatalf("markdownRoute(%q) = %q, %v; want %q, %v", tt.href, route, ok, tt.route, tt.ok)
		}
	}
}

func hasLinkTo(html, target string) bool {
	return strings.Contains(html, `href="`+target+`"`)
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
