package content

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/go-sql-driver/mysql"
)

func post(title, date string, extra string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("---\ntitle: " + title + "\ndate: " + date + "\n" + extra + "---\nbody\n")}
}

func testStore(t *testing.T) *Store {
	t.Helper()
	fsys := fstest.MapFS{
		"posts/alpha.md":  post("Alpha", "2025-03-01", "tags: [proving, gpu]\nfeatured: true\n"),
		"posts/beta.md":   post("Beta", "2025-05-01", "tags: [Proving]\n"),
		"posts/gamma.md":  post("Gamma", "2025-05-01", "tags: [security]\n"),
		"posts/delta.md":  post("Delta", "2024-12-24", "tags: [gpu, proving]\nfeatured: true\n"),
		"posts/broken.md": {Data: []byte("---\ndate: someday\n---\n")},
		"posts/notes.txt": {Data: []byte("ignored")},
		"posts/sub/x.md":  post("Nested", "2025-01-01", ""),
	}
	s := NewStore("blog", nil, FSSource{FS: fsys, Dir: "posts"})
	require.NoError(t, s.Reload(context.Background()))
	return s
}

func slugs(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func TestPostsSortedNewestFirst(t *testing.T) {
	s := testStore(t)

	want := []string{"beta", "gamma", "alpha", "delta"}
	if diff := cmp.Diff(want, slugs(s.Posts())); diff != "" {
		t.Fatalf("Posts() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"beta", "gamma"}, slugs(s.Latest(2)))
}

func TestFeaturedSubset(t *testing.T) {
	s := testStore(t)
	assert.Equal(t, []string{"alpha", "delta"}, slugs(s.Featured()))
}

func TestPostLookup(t *testing.T) {
	s := testStore(t)

	p, err := s.Post("alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", p.Title)

	_, err = s.Post("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestByTagAndTags(t *testing.T) {
	s := testStore(t)

	assert.Equal(t, []string{"beta", "alpha", "delta"}, slugs(s.ByTag("PROVING")))

	want := []TagCount{
		{Tag: "Proving", Key: "proving", Count: 3},
		{Tag: "gpu", Key: "gpu", Count: 2},
		{Tag: "security", Key: "security", Count: 1},
	}
	if diff := cmp.Diff(want, s.Tags()); diff != "" {
		t.Fatalf("Tags() mismatch (-want +got):\n%s", diff)
	}
}

func TestRelated(t *testing.T) {
	s := testStore(t)
	alpha, err := s.Post("alpha")
	require.NoError(t, err)

	assert.Equal(t, []string{"delta", "beta"}, slugs(s.Related(alpha, 5)))
	assert.Equal(t, []string{"delta"}, slugs(s.Related(alpha, 1)))
	assert.Empty(t, s.Related(Post{Slug: "lonely"}, 3))
}

func TestOrderedAndAdjacent(t *testing.T) {
	fsys := fstest.MapFS{
		"intro.md":    post("Intro", "2025-01-01", "order: 1\n"),
		"proofs.md":   post("Proofs", "2025-01-01", "order: 2\n"),
		"appendix.md": post("Appendix", "2025-01-01", "order: 2\n"),
	}
	s := NewStore("learn", nil, FSSource{FS: fsys})
	require.NoError(t, s.Reload(context.Background()))

	assert.Equal(t, []string{"intro", "appendix", "proofs"}, slugs(s.Ordered()))

	prev, next := s.Adjacent("appendix")
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "intro", prev.Slug)
	assert.Equal(t, "proofs", next.Slug)

	prev, next = s.Adjacent("intro")
	assert.Nil(t, prev)
	assert.Equal(t, "appendix", next.Slug)

	prev, next = s.Adjacent("nope")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestLaterSourcesOverride(t *testing.T) {
	embedded := fstest.MapFS{"a.md": post("Embedded", "2025-01-01", ""), "b.md": post("Only embedded", "2025-01-02", "")}
	disk := fstest.MapFS{"a.md": post("From disk", "2025-01-01", "")}

	s := NewStore("blog", nil, FSSource{Label: "embedded", FS: embedded}, FSSource{Label: "disk", FS: disk})
	require.NoError(t, s.Reload(context.Background()))

	p, err := s.Post("a")
	require.NoError(t, err)
	assert.Equal(t, "From disk", p.Title)
	assert.Equal(t, "disk", p.Source)
	assert.Equal(t, 2, s.Len())
}

type failingSource struct{}

func (failingSource) Name() string { return "failing" }

func (failingSource) Load(context.Context) (Batch, error) {
	return Batch{}, errors.New("connection refused")
}

func TestReloadFailureKeepsSnapshot(t *testing.T) {
	fsys := fstest.MapFS{"a.md": post("A", "2025-01-01", "")}
	src := &switchSource{ok: FSSource{FS: fsys}}
	s := NewStore("blog", nil, src)

	var calls []error
	s.OnReload(func(n int, err error) { calls = append(calls, err) })

	require.NoError(t, s.Reload(context.Background()))
	src.fail = true
	require.Error(t, s.Reload(context.Background()))

	assert.Equal(t, 1, s.Len())
	require.Len(t, calls, 2)
	assert.NoError(t, calls[0])
	assert.Error(t, calls[1])
}

type switchSource struct {
	ok   Source
	fail bool
}

func (s *switchSource) Name() string { return "switch" }

func (s *switchSource) Load(ctx context.Context) (Batch, error) {
	if s.fail {
		return failingSource{}.Load(ctx)
	}
	return s.ok.Load(ctx)
}

func TestMissingDirectoryIsEmpty(t *testing.T) {
	s := NewStore("blog", nil, FSSource{FS: fstest.MapFS{}, Dir: "posts"})
	require.NoError(t, s.Reload(context.Background()))
	assert.Zero(t, s.Len())
}

func TestMySQLSource(t *testing.T) {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}
	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `CREATE TEMPORARY TABLE posts (slug VARCHAR(191) PRIMARY KEY, source MEDIUMTEXT, updated_at DATETIME)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO posts VALUES ('from-db', '# Hello', '2025-02-03 04:05:06'), ('bad..slug', 'x', NOW())`)
	require.NoError(t, err)

	batch, err := MySQLSource{DB: db}.Load(ctx)
	require.NoError(t, err)
	require.Len(t, batch.Posts, 1)
	assert.Len(t, batch.Skipped, 1)
	assert.Equal(t, "From Db", batch.Posts[0].Title)
	assert.Equal(t, 2025, batch.Posts[0].Date.Year())
}
