// Package vocabulary loads categorized word lists and indexes them by
// syllable count for the generator.
package vocabulary

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/stanza/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/vocabulary.yaml
var builtinYAML []byte

// ErrEmptySource indicates a vocabulary resource declared no words.
var ErrEmptySource = errors.New("vocabulary has no words")

// Group is a named sub-list inside a category (e.g. "celestial" in nature).
type Group struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

type categoryDoc struct {
	Name   string   `yaml:"name"`
	Groups []Group  `yaml:"groups,omitempty"`
	Words  []string `yaml:"words,omitempty"`
}

type document struct {
	Categories []categoryDoc `yaml:"categories"`
}

// CategoryWords is one category's ordered, duplicate-free word list.
type CategoryWords struct {
	Category domain.Category
	Words    []string
}

// Source is the static vocabulary resource: category name to ordered words.
// Categories keep the order in which they were first added.
type Source struct {
	categories []CategoryWords
	index      map[domain.Category]int
	seen       map[domain.Category]map[string]bool
}

// NewSource creates an empty Source.
func NewSource() *Source {
	return &Source{
		index: make(map[domain.Category]int),
		seen:  make(map[domain.Category]map[string]bool),
	}
}

// Add appends words to category, skipping blanks and words the category
// already holds. Words are lower-cased, and an entry holding several
// whitespace-separated words is added word by word so every cached entry
// is counted the same way a generated line is.
func (s *Source) Add(category domain.Category, words ...string) {
	category = domain.NormalizeCategory(string(category))
	if category == "" {
		return
	}
	i, ok := s.index[category]
	if !ok {
		i = len(s.categories)
		s.index[category] = i
		s.categories = append(s.categories, CategoryWords{Category: category})
		s.seen[category] = make(map[string]bool)
	}
	for _, entry := range words {
		for _, w := range strings.Fields(strings.ToLower(entry)) {
			if s.seen[category][w] {
				continue
			}
			s.seen[category][w] = true
			s.categories[i].Words = append(s.categories[i].Words, w)
		}
	}
}

// Categories returns the categories in insertion order.
func (s *Source) Categories() []CategoryWords {
	out := make([]CategoryWords, len(s.categories))
	for i, c := range s.categories {
		out[i] = CategoryWords{Category: c.Category, Words: append([]string(nil), c.Words...)}
	}
	return out
}

// Words returns the word list of one category, or nil.
func (s *Source) Words(category domain.Category) []string {
	i, ok := s.index[category]
	if !ok {
		return nil
	}
	return append([]string(nil), s.categories[i].Words...)
}

// Len is the total number of words across categories.
func (s *Source) Len() int {
	n := 0
	for _, c := range s.categories {
		n += len(c.Words)
	}
	return n
}

// Parse reads a YAML vocabulary document:
//
//	categories:
//	  - name: nature
//	    groups:
//	      - name: celestial
//	        words: [sun, moon]
//	    words: [extra, words]
func Parse(r io.Reader) (*Source, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySource
		}
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}

	src := NewSource()
	for i, c := range doc.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("categories[%d]: missing name", i)
		}
		cat := domain.NormalizeCategory(c.Name)
		for _, g := range c.Groups {
			src.Add(cat, g.Words...)
		}
		src.Add(cat, c.Words...)
	}
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	return src, nil
}

// LoadFile reads a vocabulary from a YAML file, or from every *.yaml/*.yml
// file in a directory (in lexical order, merged).
func LoadFile(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return loadOne(path)
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(path, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	merged := NewSource()
	for _, f := range files {
		src, err := loadOne(f)
		if err != nil {
			return nil, err
		}
		for _, c := range src.categories {
			merged.Add(c.Category, c.Words...)
		}
	}
	if merged.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptySource)
	}
	return merged, nil
}

func loadOne(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// Default returns the built-in vocabulary: nature, emotion, abstract and
// sensory words.
func Default() *Source {
	src, err := Parse(strings.NewReader(string(builtinYAML)))
	if err != nil {
		panic(fmt.Sprintf("vocabulary: embedded data: %v", err))
	}
	return src
}
