package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"jspark.dev/internal/content"
	"jspark.dev/internal/models"
	"jspark.dev/internal/services"
)

// ArticleHandler handles article-related endpoints
type ArticleHandler struct {
	articleService *services.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(as *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: as}
}

// articleListing is the metadata-only shape used in listings.
type articleListing struct {
	Slug string             `json:"slug"`
	Meta models.ArticleMeta `json:"meta"`
}

// articleResponse is the full shape for a single article.
type articleResponse struct {
	Slug string             `json:"slug"`
	Meta models.ArticleMeta `json:"meta"`
	HTML string             `json:"html"`
}

// ListArticles handles GET /api/articles. Drafts are excluded from
// public listings; ordering is date descending.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	published := h.articleService.Published()

	listings := make([]articleListing, 0, len(published))
	for _, a := range published {
		listings = append(listings, articleListing{Slug: a.Slug, Meta: a.Meta})
	}
	respondJSON(w, http.StatusOK, listings)
}

// GetArticle handles GET /api/articles/{slug}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := h.articleService.BySlug(slug)
	if err != nil {
		respondError(w, http.StatusNotFound, "Article not found")
		return
	}

	html, err := content.RenderBody(article.Body)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to render article")
		return
	}

	respondJSON(w, http.StatusOK, articleResponse{
		Slug: article.Slug,
		Meta: article.Meta,
		HTML: string(html),
	})
}
