package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"
)

// Source yields the raw documents of one collection.
type Source interface {
	Name() string
	Load(ctx context.Context) (Batch, error)
}

// Batch is the result of loading a source. Documents that fail to parse are
// reported in Skipped rather than failing the whole load.
type Batch struct {
	Posts   []Post
	Skipped []Skipped
}

// Skipped names a document that could not be parsed.
type Skipped struct {
	Name string
	Err  error
}

func (b *Batch) add(name, slug string, src []byte, origin string) {
	p, err := ParsePost(slug, src)
	if err != nil {
		b.Skipped = append(b.Skipped, Skipped{Name: name, Err: err})
		return
	}
	p.Source = origin
	b.Posts = append(b.Posts, p)
}

// FSSource reads <slug>.md files from a directory of an fs.FS. Both the
// embedded tree and os.DirFS go through it.
type FSSource struct {
	Label string
	FS    fs.FS
	Dir   string
}

func (s FSSource) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return "fs:" + s.Dir
}

func (s FSSource) Load(ctx context.Context) (Batch, error) {
	var batch Batch
	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return batch, nil
		}
		return batch, fmt.Errorf("read %s: %w", dir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".md" {
			continue
		}
		src, err := fs.ReadFile(s.FS, path.Join(dir, name))
		if err != nil {
			batch.Skipped = append(batch.Skipped, Skipped{Name: name, Err: err})
			continue
		}
		batch.add(name, strings.TrimSuffix(name, ".md"), src, s.Name())
	}
	return batch, nil
}

// MySQLSource reads posts stored in the posts table.
type MySQLSource struct {
	DB *sql.DB
}

func (s MySQLSource) Name() string { return "mysql" }

func (s MySQLSource) Load(ctx context.Context) (Batch, error) {
	const query = `SELECT slug, source, updated_at FROM posts ORDER BY slug`
	var batch Batch

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return batch, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			slug      string
			src       string
			updatedAt time.Time
		)
		if err := rows.Scan(&slug, &src, &updatedAt); err != nil {
			return batch, fmt.Errorf("scan post: %w", err)
		}
		before := len(batch.Posts)
		batch.add(slug, slug, []byte(src), s.Name())
		if len(batch.Posts) > before && batch.Posts[before].Date.IsZero() {
			batch.Posts[before].Date = updatedAt.UTC()
		}
	}
	if err := rows.Err(); err != nil {
		return batch, fmt.Errorf("iterate posts: %w", err)
	}
	return batch, nil
}
