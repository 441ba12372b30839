package services

import (
	"fmt"

	"jspark.dev/internal/content"
	"jspark.dev/internal/models"
)

// ArticleService handles article listing and lookup. The draft flag
// is interpreted here, at listing time; the records themselves are
// never mutated.
type ArticleService struct {
	store *content.Store
}

// NewArticleService creates a new ArticleService
func NewArticleService(store *content.Store) *ArticleService {
	return &ArticleService{store: store}
}

// All returns every article, drafts included, newest first.
func (s *ArticleService) All() []models.Article {
	return s.store.All()
}

// Published returns the articles that belong in public listings,
// newest first.
func (s *ArticleService) Published() []models.Article {
	var out []models.Article
	for _, a := range s.store.All() {
		if a.Published() {
			out = append(out, a)
		}
	}
	return out
}

// BySlug returns a published article by its slug. Drafts are not
// addressable through this path.
func (s *ArticleService) BySlug(slug string) (*models.Article, error) {
	for _, a := range s.store.All() {
		if a.Slug == slug && a.Published() {
			article := a
			return &article, nil
		}
	}
	return nil, fmt.Errorf("article not found: %s", slug)
}
