// Package feed renders blog posts as an RSS 2.0 document.
package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"zkevmsite/internal/content"
)

// ContentType is the media type served for the feed.
const ContentType = "application/rss+xml; charset=utf-8"

// Channel describes the site publishing the feed.
type Channel struct {
	Title       string
	Link        string
	Description string
}

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Atom    string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	SelfLink      atomLink  `xml:"atom:link"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        rssGUID  `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Write encodes posts as RSS. Posts are expected newest first; the newest
// date becomes lastBuildDate.
func Write(w io.Writer, ch Channel, posts []content.Post) error {
	base := strings.TrimRight(ch.Link, "/")
	doc := rss{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: rssChannel{
			Title:       ch.Title,
			Link:        base + "/",
			Description: ch.Description,
			Language:    "en",
			SelfLink:    atomLink{Href: base + "/rss.xml", Rel: "self", Type: "application/rss+xml"},
		},
	}

	var newest time.Time
	for _, p := range posts {
		link := base + "/blog/" + p.Slug
		item := rssItem{
			Title:       p.Title,
			Link:        link,
			GUID:        rssGUID{IsPermaLink: true, Value: link},
			Description: p.Excerpt,
			Author:      p.Author,
			Categories:  p.Tags,
		}
		if !p.Date.IsZero() {
			item.PubDate = p.Date.Format(time.RFC1123Z)
			if p.Date.After(newest) {
				newest = p.Date
			}
		}
		doc.Channel.Items = append(doc.Channel.Items, item)
	}
	if !newest.IsZero() {
		doc.Channel.LastBuildDate = newest.Format(time.RFC1123Z)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode rss: %w", err)
	}
	return enc.Close()
}
