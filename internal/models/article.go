package models

import "time"

// ArticleMeta is the front matter block of an article. The same
// struct drives both parsing and re-encoding, so the YAML tags are
// the wire format.
type ArticleMeta struct {
	Title   string   `yaml:"title" json:"title"`
	Date    string   `yaml:"date" json:"date"`
	Tags    []string `yaml:"tags" json:"tags"`
	Draft   bool     `yaml:"draft" json:"draft"`
	Summary string   `yaml:"summary" json:"summary"`
}

// ParsedDate returns the metadata date as a time.Time. Front matter
// dates are authored in ISO form (YYYY-MM-DD).
func (m *ArticleMeta) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", m.Date)
}

// Article is one authored document: front matter plus the raw
// Markdown body that follows it. The body is opaque to the data
// layer; only the rendering path converts it to HTML.
type Article struct {
	Slug string      `json:"slug"`
	Meta ArticleMeta `json:"meta"`
	Body []byte      `json:"-"`
}

// Published reports whether the article belongs in public listings.
func (a *Article) Published() bool {
	return !a.Meta.Draft
}
