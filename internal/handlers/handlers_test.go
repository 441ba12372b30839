package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jspark.dev/internal/config"
	"jspark.dev/internal/content"
	"jspark.dev/internal/models"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	published := `---
title: Shipping ESM and CJS from one npm package
date: "2024-07-18"
tags:
  - javascript
  - typescript
  - npm
  - esm
draft: false
summary: Publishing a dual-format TypeScript library.
---

The JavaScript ecosystem is migrating.

` + "```json\n{\"type\": \"module\"}\n```\n"
	draft := `---
title: Unfinished thoughts
date: "2026-01-01"
tags:
  - go
draft: true
summary: Not yet.
---

Hidden.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shipping-esm-and-cjs.md"), []byte(published), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unfinished.md"), []byte(draft), 0o644))

	store, err := content.NewStore(dir)
	require.NoError(t, err)

	cfg := &config.Config{DataPath: "../../data", ContentDir: dir}
	srv := httptest.NewServer(SetupRoutes(cfg, store))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestListProjects(t *testing.T) {
	srv := testServer(t)

	var projects []models.Project
	resp := getJSON(t, srv.URL+"/api/projects", &projects)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, projects, 2)
	assert.Equal(t, "Token.js", projects[0].Title)
	assert.Equal(t, "Sphinx DevOps Platform", projects[1].Title)

	require.NotNil(t, projects[0].Href)
	assert.True(t, strings.HasSuffix(*projects[0].Href, "token-js/token.js"))
}

func TestGetProjectByTitle(t *testing.T) {
	srv := testServer(t)

	var p models.Project
	resp := getJSON(t, srv.URL+"/api/projects/Token.js", &p)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, p.Description)
}

func TestGetProjectNotFound(t *testing.T) {
	srv := testServer(t)

	resp := getJSON(t, srv.URL+"/api/projects/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListArticlesExcludesDrafts(t *testing.T) {
	srv := testServer(t)

	var listings []struct {
		Slug string             `json:"slug"`
		Meta models.ArticleMeta `json:"meta"`
	}
	resp := getJSON(t, srv.URL+"/api/articles", &listings)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, listings, 1)
	assert.Equal(t, "shipping-esm-and-cjs", listings[0].Slug)
	assert.Equal(t, []string{"javascript", "typescript", "npm", "esm"}, listings[0].Meta.Tags)
}

func TestGetArticleRendersHTML(t *testing.T) {
	srv := testServer(t)

	var article struct {
		Slug string             `json:"slug"`
		Meta models.ArticleMeta `json:"meta"`
		HTML string             `json:"html"`
	}
	resp := getJSON(t, srv.URL+"/api/articles/shipping-esm-and-cjs", &article)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, article.HTML, "<p>")
	assert.Contains(t, article.HTML, `language-json`)
}

func TestGetArticleDraftIsHidden(t *testing.T) {
	srv := testServer(t)

	resp := getJSON(t, srv.URL+"/api/articles/unfinished", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	var status map[string]string
	resp := getJSON(t, srv.URL+"/api/health", &status)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", status["status"])
}
