package content

import (
	"bytes"
	"fmt"
	"io"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v2"

	"jspark.dev/internal/models"
)

// SplitDocument separates the front matter block from the Markdown
// body. A document with no front matter at all is an authoring error
// here, unlike general-purpose generators that fall back to pure
// Markdown: every article in this repository carries metadata.
func SplitDocument(r io.Reader) (models.ArticleMeta, []byte, error) {
	var meta models.ArticleMeta
	body, err := frontmatter.MustParse(r, &meta)
	if err != nil {
		return models.ArticleMeta{}, nil, fmt.Errorf("parsing front matter: %w", err)
	}
	return meta, body, nil
}

// EncodeMeta serializes a front matter block back to its fenced YAML
// form. Decoding the result yields the identical key/value set.
func EncodeMeta(meta models.ArticleMeta) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	out, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}
	buf.Write(out)
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}
