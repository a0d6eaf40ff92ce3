// Package content loads markdown posts and chapters with YAML frontmatter
// from the embedded tree, a directory on disk or a MySQL table.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a slug does not name a loaded document.
var ErrNotFound = errors.New("content not found")

const (
	wordsPerMinute   = 225
	maxExcerptLength = 200
)

// Post is one markdown document plus its frontmatter.
type Post struct {
	Slug        string
	Title       string
	Date        time.Time
	Excerpt     string
	Author      string
	Tags        []string
	Featured    bool
	Order       int
	Body        string
	ReadingTime int
	Source      string
}

// HasTag reports whether the post carries tag, comparing normalized keys.
func (p Post) HasTag(tag string) bool {
	want := tagKey(tag)
	for _, t := range p.Tags {
		if tagKey(t) == want {
			return true
		}
	}
	return false
}

type frontMatter struct {
	Title    string    `yaml:"title"`
	Date     scalarStr `yaml:"date"`
	Excerpt  string    `yaml:"excerpt"`
	Author   string    `yaml:"author"`
	Tags     []string  `yaml:"tags"`
	Featured bool      `yaml:"featured"`
	Order    int       `yaml:"order"`
}

// scalarStr keeps the literal text of a scalar so YAML timestamps are parsed
// by us rather than coerced by the decoder.
type scalarStr string

func (s *scalarStr) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", value.Line)
	}
	*s = scalarStr(value.Value)
	return nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", raw)
}

// ParsePost splits frontmatter from body and fills in the derived fields.
// Documents without frontmatter are accepted; their title comes from the slug.
func ParsePost(slug string, src []byte) (Post, error) {
	if !ValidSlug(slug) {
		return Post{}, fmt.Errorf("invalid slug %q", slug)
	}

	raw, body, err := splitFrontMatter(src)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", slug, err)
	}

	var meta frontMatter
	if len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &meta); err != nil {
			return Post{}, fmt.Errorf("%s: parse frontmatter: %w", slug, err)
		}
	}

	date, err := parseDate(string(meta.Date))
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", slug, err)
	}

	p := Post{
		Slug:     slug,
		Title:    strings.TrimSpace(meta.Title),
		Date:     date,
		Excerpt:  strings.TrimSpace(meta.Excerpt),
		Author:   strings.TrimSpace(meta.Author),
		Tags:     cleanTags(meta.Tags),
		Featured: meta.Featured,
		Order:    meta.Order,
		Body:     body,
	}
	if p.Title == "" {
		p.Title = SlugTitle(slug)
	}
	if p.Excerpt == "" {
		p.Excerpt = firstParagraph(body)
	}
	p.ReadingTime = readingTime(body)

	return p, nil
}

func splitFrontMatter(src []byte) ([]byte, string, error) {
	text := bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	text = bytes.TrimPrefix(text, []byte("\uFEFF"))
	if !bytes.HasPrefix(text, []byte("---\n")) {
		return nil, string(text), nil
	}

	rest := text[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---\n")) || bytes.Equal(rest, []byte("---")) {
		return nil, strings.TrimPrefix(string(rest), "---\n"), nil
	}
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("\n---")], "", nil
		}
		return nil, "", errors.New("unterminated frontmatter")
	}
	return rest[:end], string(rest[end+len("\n---\n"):]), nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := tagKey(t)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// tagSymbols spells out the punctuation that carries meaning in tag names
// and turns path separators into dashes before slug folding.
var tagSymbols = strings.NewReplacer(
	"#", "sharp",
	"+", "plus",
	"&", "-and-",
	"/", "-",
	"\\", "-",
	":", "-",
	"?", "",
	"'", "",
	"\"", "",
)

// tagKey is the route key for a tag. Keys only contain [a-z0-9_-], so they
// are safe as a single path segment; an empty key means the tag is dropped.
func tagKey(tag string) string {
	tag = tagSymbols.Replace(strings.TrimSpace(tag))
	if key, err := NormalizeSlug(tag); err == nil {
		return key
	}
	key := normalizeUnicode(stripDiacritics(tag))
	return strings.Trim(repeatedDashes.ReplaceAllString(key, "-"), "-")
}

// TagKey exposes the route key used for tag listings.
func TagKey(tag string) string {
	return tagKey(tag)
}

func readingTime(body string) int {
	minutes := len(strings.Fields(body)) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// firstParagraph returns the first prose paragraph of a markdown body with
// the most common inline markup removed.
func firstParagraph(body string) string {
	var para []string
	inFence := false
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if trimmed == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "![") || strings.HasPrefix(trimmed, "<") {
			if len(para) > 0 {
				break
			}
			continue
		}
		para = append(para, trimmed)
	}

	text := strings.Join(para, " ")
	text = inlineMarkup.Replace(text)
	return truncate(text, maxExcerptLength)
}

var inlineMarkup = strings.NewReplacer("**", "", "__", "", "`", "", "*", "", "[", "", "]", "")

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:max])
	if i := strings.LastIndex(cut, " "); i > max/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
