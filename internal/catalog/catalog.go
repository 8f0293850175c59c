package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"paperapi/internal/paper"

	"go.yaml.in/yaml/v3"
)

//go:embed papers.yaml
var defaultDocument []byte

// Catalog is the fixed, read-only set of searchable papers. It is safe for
// concurrent use because nothing mutates it after Load returns.
type Catalog struct {
	papers []paper.Paper
}

type document struct {
	Papers []paper.Paper `yaml:"papers"`
}

// Load parses a YAML catalog document. Every entry must be a valid paper and
// ids must be unique.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Papers) == 0 {
		return nil, errors.New("catalog is empty")
	}

	seen := make(map[string]bool, len(doc.Papers))
	for i, p := range doc.Papers {
		if err := paper.Validate(p); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
	}
	return &Catalog{papers: doc.Papers}, nil
}

// LoadFile loads a catalog document from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in catalog of ten papers.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultDocument))
	if err != nil {
		panic("catalog: embedded document is invalid: " + err.Error())
	}
	return c
}

// ListAll returns every paper in catalog order.
func (c *Catalog) ListAll() []paper.Paper {
	return paper.Clone(c.papers)
}

// Search returns, in catalog order, the papers whose title or authors contain
// term case-insensitively, or whose citation count contains it as a decimal
// string. The citation match is literal, so "6" matches 67 and 60.
func (c *Catalog) Search(term string) []paper.Paper {
	needle := strings.ToLower(term)
	out := []paper.Paper{}
	for _, p := range c.papers {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Authors), needle) ||
			strings.Contains(strconv.Itoa(p.Citations), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the paper with the given id.
func (c *Catalog) Get(id string) (paper.Paper, bool) {
	if i := paper.IndexOf(c.papers, id); i >= 0 {
		return c.papers[i], true
	}
	return paper.Paper{}, false
}

// Len reports the number of papers.
func (c *Catalog) Len() int {
	return len(c.papers)
}
