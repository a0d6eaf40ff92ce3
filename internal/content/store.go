package content

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Store holds one collection of posts in memory. Reload swaps the whole
// snapshot, so readers always see a consistent set.
type Store struct {
	name    string
	sources []Source
	logger  *zap.Logger

	mu     sync.RWMutex
	posts  []Post
	bySlug map[string]int
	hooks  []func(n int, err error)
}

// NewStore builds an empty store. Sources are applied in order; a later
// source replaces an earlier post with the same slug.
func NewStore(name string, logger *zap.Logger, sources ...Source) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		name:    name,
		sources: sources,
		logger:  logger.With(zap.String("collection", name)),
		bySlug:  map[string]int{},
	}
}

// Name is the collection name, e.g. "blog".
func (s *Store) Name() string { return s.name }

// OnReload registers fn to run after every reload attempt.
func (s *Store) OnReload(fn func(n int, err error)) {
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

// Reload reads every source and installs the merged result. When a source
// fails the previous snapshot is kept.
func (s *Store) Reload(ctx context.Context) error {
	merged := map[string]Post{}
	for _, src := range s.sources {
		batch, err := src.Load(ctx)
		if err != nil {
			err = fmt.Errorf("load %s: %w", src.Name(), err)
			s.notify(0, err)
			return err
		}
		for _, skipped := range batch.Skipped {
			s.logger.Warn("skipping document",
				zap.String("source", src.Name()),
				zap.String("name", skipped.Name),
				zap.Error(skipped.Err))
		}
		for _, p := range batch.Posts {
			if prev, ok := merged[p.Slug]; ok {
				s.logger.Debug("post overridden",
					zap.String("slug", p.Slug),
					zap.String("from", prev.Source),
					zap.String("to", p.Source))
			}
			merged[p.Slug] = p
		}
	}

	posts := make([]Post, 0, len(merged))
	for _, p := range merged {
		posts = append(posts, p)
	}
	sortByDate(posts)

	index := make(map[string]int, len(posts))
	for i, p := range posts {
		index[p.Slug] = i
	}

	s.mu.Lock()
	s.posts = posts
	s.bySlug = index
	s.mu.Unlock()

	s.logger.Info("content loaded", zap.Int("posts", len(posts)))
	s.notify(len(posts), nil)
	return nil
}

func (s *Store) notify(n int, err error) {
	s.mu.RLock()
	hooks := append([]func(int, error){}, s.hooks...)
	s.mu.RUnlock()
	for _, fn := range hooks {
		fn(n, err)
	}
}

// Len returns the number of loaded posts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// Posts returns every post, newest first. Posts sharing a date are ordered by slug.
func (s *Store) Posts() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Post(nil), s.posts...)
}

// Latest returns at most n posts, newest first.
func (s *Store) Latest(n int) []Post {
	posts := s.Posts()
	if n >= 0 && len(posts) > n {
		posts = posts[:n]
	}
	return posts
}

// Featured returns the posts marked featured, newest first.
func (s *Store) Featured() []Post {
	return s.filter(func(p Post) bool { return p.Featured })
}

// Post looks a post up by slug.
func (s *Store) Post(slug string) (Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.bySlug[slug]
	if !ok {
		return Post{}, fmt.Errorf("%s/%s: %w", s.name, slug, ErrNotFound)
	}
	return s.posts[i], nil
}

// ByTag returns the posts carrying tag, compared case-insensitively.
func (s *Store) ByTag(tag string) []Post {
	return s.filter(func(p Post) bool { return p.HasTag(tag) })
}

func (s *Store) filter(keep func(Post) bool) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Post
	for _, p := range s.posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// TagCount is a tag with the number of posts carrying it.
type TagCount struct {
	Tag   string
	Key   string
	Count int
}

// Tags lists tags by descending count, then by key. The display form is the
// spelling used by the newest post.
func (s *Store) Tags() []TagCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]*TagCount{}
	for _, p := range s.posts {
		for _, t := range p.Tags {
			key := tagKey(t)
			tc, ok := counts[key]
			if !ok {
				tc = &TagCount{Tag: t, Key: key}
				counts[key] = tc
			}
			tc.Count++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for _, tc := range counts {
		out = append(out, *tc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Related returns up to n other posts sharing at least one tag with p, most
// shared tags first, then newest.
func (s *Store) Related(p Post, n int) []Post {
	if n <= 0 || len(p.Tags) == 0 {
		return nil
	}
	want := map[string]struct{}{}
	for _, t := range p.Tags {
		want[tagKey(t)] = struct{}{}
	}

	type scored struct {
		post  Post
		score int
	}
	var candidates []scored
	for _, other := range s.Posts() {
		if other.Slug == p.Slug {
			continue
		}
		score := 0
		for _, t := range other.Tags {
			if _, ok := want[tagKey(t)]; ok {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{post: other, score: score})
		}
	}
	// Posts() is already newest first, so a stable sort keeps that as the tie-break.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]Post, len(candidates))
	for i, c := range candidates {
		out[i] = c.post
	}
	return out
}

// Ordered returns posts by their order field, then slug. Learn chapters use it.
func (s *Store) Ordered() []Post {
	posts := s.Posts()
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Order != posts[j].Order {
			return posts[i].Order < posts[j].Order
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts
}

// Adjacent returns the chapters before and after slug in Ordered order.
func (s *Store) Adjacent(slug string) (prev, next *Post) {
	posts := s.Ordered()
	for i := range posts {
		if posts[i].Slug != slug {
			continue
		}
		if i > 0 {
			prev = &posts[i-1]
		}
		if i+1 < len(posts) {
			next = &posts[i+1]
		}
		return prev, next
	}
	return nil, nil
}

func sortByDate(posts []Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})
}
