package feed

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zkevmsite/internal/content"
)

var site = Channel{Title: "zkEVM", Link: "https://zkevm.example/", Description: "Proving Ethereum"}

func TestWriteEscapesText(t *testing.T) {
	posts := []content.Post{{
		Slug:    "a-and-b",
		Title:   "A & B",
		Date:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Excerpt: "<b>bold</b> claims",
		Tags:    []string{"proving"},
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, site, posts))
	out := buf.String()

	assert.Contains(t, out, "<title>A &amp; B</title>")
	assert.Contains(t, out, "&lt;b&gt;bold&lt;/b&gt; claims")
	assert.Contains(t, out, `<guid isPermaLink="true">https://zkevm.example/blog/a-and-b</guid>`)
	assert.Contains(t, out, "<category>proving</category>")
	assert.True(t, strings.HasPrefix(out, xml.Header))
}

func TestPubDateParses(t *testing.T) {
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	posts := []content.Post{
		{Slug: "newer", Title: "Newer", Date: date},
		{Slug: "undated", Title: "Undated"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, site, posts))

	var doc struct {
		Channel struct {
			LastBuildDate string `xml:"lastBuildDate"`
			Items         []struct {
				Title   string `xml:"title"`
				PubDate string `xml:"pubDate"`
			} `xml:"item"`
		} `xml:"channel"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Channel.Items, 2)

	got, err := time.Parse(time.RFC1123Z, doc.Channel.Items[0].PubDate)
	require.NoError(t, err)
	assert.True(t, got.Equal(date))
	assert.Empty(t, doc.Channel.Items[1].PubDate)
	assert.Equal(t, doc.Channel.Items[0].PubDate, doc.Channel.LastBuildDate)
}

func TestEmptyFeed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, site, nil))
	assert.Contains(t, buf.String(), "<link>https://zkevm.example/</link>")
	assert.NotContains(t, buf.String(), "<item>")
}
