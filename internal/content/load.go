package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported content format")

// Load reads a content file and builds it. The format follows the extension:
// .yaml/.yml, .toml, or .md (front matter holds the data, the markdown body
// replaces the about prose).
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", path, err)
	}
	doc, err := Decode(filepath.Ext(path), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding content file %s: %w", path, err)
	}
	c, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// Decode parses a raw Document in the format named by ext.
func Decode(ext string, r io.Reader) (*Document, error) {
	doc := &Document{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case ".toml":
		meta, err := toml.NewDecoder(r).Decode(doc)
		if err != nil {
			return nil, err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}
	case ".md", ".markdown":
		body, err := frontmatter.Parse(r, doc)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(body)) != "" {
			doc.About.Body = string(body)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return doc, nil
}
