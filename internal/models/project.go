package models

// Project represents one portfolio project entry
type Project struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Href        *string `json:"href,omitempty"`
	ImgSrc      *string `json:"imgSrc,omitempty"`
}

// ProjectList wraps the ordered array of projects. Order is display
// order and is preserved as authored.
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// HasHref reports whether the project links to an external resource.
// A nil pointer means the field was absent from the fixture; an empty
// string is kept as-is so the renderer can tell the two apart.
func (p *Project) HasHref() bool {
	return p.Href != nil && *p.Href != ""
}

// HasImage reports whether the project has a usable image source.
func (p *Project) HasImage() bool {
	return p.ImgSrc != nil && *p.ImgSrc != ""
}
