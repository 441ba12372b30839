package services

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jspark.dev/internal/models"
)

func loadFixture(t *testing.T) *models.ProjectList {
	t.Helper()
	data, err := os.ReadFile("../../data/projects.json")
	require.NoError(t, err)

	var list models.ProjectList
	require.NoError(t, json.Unmarshal(data, &list))
	return &list
}

func TestGetAllReturnsAuthoredOrder(t *testing.T) {
	s := NewProjectService(loadFixture(t))

	all := s.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "Token.js", all[0].Title)
	assert.Equal(t, "Sphinx DevOps Platform", all[1].Title)
}

func TestFixtureRequiredFieldsPresent(t *testing.T) {
	for _, p := range NewProjectService(loadFixture(t)).GetAll() {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Description)
	}
}

func TestFixtureHrefsAreAbsolute(t *testing.T) {
	for _, p := range NewProjectService(loadFixture(t)).GetAll() {
		if p.Href == nil || *p.Href == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(*p.Href, "https://"), "href %q is not absolute", *p.Href)
	}
}

func TestFixtureTokenJSLink(t *testing.T) {
	s := NewProjectService(loadFixture(t))

	p, err := s.GetByTitle("Token.js")
	require.NoError(t, err)
	require.NotNil(t, p.Href)
	assert.True(t, strings.HasSuffix(*p.Href, "token-js/token.js"))

	// imgSrc is authored as an empty string, not omitted; the
	// distinction must survive loading.
	require.NotNil(t, p.ImgSrc)
	assert.Equal(t, "", *p.ImgSrc)
}

func TestFixtureSphinxHasNoOptionalFields(t *testing.T) {
	s := NewProjectService(loadFixture(t))

	p, err := s.GetByTitle("Sphinx DevOps Platform")
	require.NoError(t, err)
	assert.Nil(t, p.Href)
	assert.Nil(t, p.ImgSrc)
}

func TestGetByTitleUnknown(t *testing.T) {
	s := NewProjectService(loadFixture(t))

	_, err := s.GetByTitle("No Such Project")
	assert.Error(t, err)
}
