package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"jspark.dev/internal/models"
)

// Store holds the parsed articles from a content directory. Articles
// are immutable once loaded; Reload swaps the whole slice under the
// lock, so readers always see a consistent snapshot.
type Store struct {
	dir string

	mu       sync.RWMutex
	articles []models.Article
}

// NewStore loads every Markdown file under dir.
func NewStore(dir string) (*Store, error) {
	s := &Store{dir: dir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the content directory from scratch. Used by the
// serve command when the file watcher reports a change.
func (s *Store) Reload() error {
	var articles []models.Article

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() || !isMarkdown(d.Name()) {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		meta, body, err := SplitDocument(f)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		articles = append(articles, models.Article{
			Slug: Slug(d.Name()),
			Meta: meta,
			Body: body,
		})
		return nil
	})
	if err != nil {
		return err
	}

	// Listings are newest-first; break ties on slug so ordering is
	// stable across reloads.
	sort.SliceStable(articles, func(i, j int) bool {
		di, erri := articles[i].Meta.ParsedDate()
		dj, errj := articles[j].Meta.ParsedDate()
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return articles[i].Slug < articles[j].Slug
	})

	s.mu.Lock()
	s.articles = articles
	s.mu.Unlock()
	return nil
}

// All returns every article, drafts included, newest first.
func (s *Store) All() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.articles
}

// Slug derives the URL slug from a content filename.
func Slug(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// isMarkdown reports whether a filename carries one of the Markdown
// extensions the store loads.
func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
