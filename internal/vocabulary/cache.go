package vocabulary

import (
	"sort"

	"github.com/alexanderramin/stanza/internal/domain"
)

// SyllableCounter counts the syllables of one word.
type SyllableCounter interface {
	Count(word string) int
}

// Cache indexes a Source by (category, syllable count). It is immutable
// after Build and safe for concurrent readers.
type Cache struct {
	order     []domain.Category
	buckets   map[domain.Category]map[int][]string
	members   map[domain.Category]map[string]bool
	syllables map[string]int
	size      int
}

// Bucket describes one (category, syllables) cell for reporting.
type Bucket struct {
	Category  domain.Category
	Syllables int
	Words     int
}

// Build counts every word of src once and files it under its category and
// syllable count, keeping first-seen order inside each bucket.
func Build(src *Source, counter SyllableCounter) *Cache {
	c := &Cache{
		buckets:   make(map[domain.Category]map[int][]string),
		members:   make(map[domain.Category]map[string]bool),
		syllables: make(map[string]int),
	}
	if src == nil {
		return c
	}

	for _, cw := range src.categories {
		if _, ok := c.buckets[cw.Category]; !ok {
			c.order = append(c.order, cw.Category)
			c.buckets[cw.Category] = make(map[int][]string)
			c.members[cw.Category] = make(map[string]bool)
		}
		for _, w := range cw.Words {
			if c.members[cw.Category][w] {
				continue
			}
			n, ok := c.syllables[w]
			if !ok {
				n = counter.Count(w)
				c.syllables[w] = n
			}
			c.buckets[cw.Category][n] = append(c.buckets[cw.Category][n], w)
			c.members[cw.Category][w] = true
			c.size++
		}
	}
	return c
}

// Lookup returns the words of category with exactly n syllables. A missing
// bucket yields an empty result.
func (c *Cache) Lookup(category domain.Category, n int) []string {
	words := c.buckets[category][n]
	return words[:len(words):len(words)]
}

// LookupUpTo concatenates Lookup(category, k) for k in 1..max.
func (c *Cache) LookupUpTo(category domain.Category, max int) []string {
	var out []string
	for k := 1; k <= max; k++ {
		out = append(out, c.buckets[category][k]...)
	}
	return out
}

// Categories returns the cached categories in source order.
func (c *Cache) Categories() []domain.Category {
	return append([]domain.Category(nil), c.order...)
}

// Has reports whether category is part of the cache.
func (c *Cache) Has(category domain.Category) bool {
	_, ok := c.buckets[category]
	return ok
}

// Syllables returns the build-time syllable count of a cached word.
func (c *Cache) Syllables(word string) (int, bool) {
	n, ok := c.syllables[word]
	return n, ok
}

// Contains reports whether word belongs to category.
func (c *Cache) Contains(category domain.Category, word string) bool {
	return c.members[category][word]
}

// Size is the number of (category, word) entries.
func (c *Cache) Size() int { return c.size }

// Buckets lists every non-empty bucket ordered by category then syllables.
func (c *Cache) Buckets() []Bucket {
	var out []Bucket
	for _, cat := range c.order {
		counts := make([]int, 0, len(c.buckets[cat]))
		for n := range c.buckets[cat] {
			counts = append(counts, n)
		}
		sort.Ints(counts)
		for _, n := range counts {
			out = append(out, Bucket{Category: cat, Syllables: n, Words: len(c.buckets[cat][n])})
		}
	}
	return out
}
