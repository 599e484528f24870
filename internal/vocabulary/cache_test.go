package vocabulary

import (
	"testing"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/prosody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingCounter wraps the heuristic counter and records calls.
type countingCounter struct {
	calls map[string]int
}

func (c *countingCounter) Count(word string) int {
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[word]++
	return prosody.HeuristicCount(word)
}

func testSource() *Source {
	src := NewSource()
	src.Add(domain.CategoryNature, "sun", "river", "moon", "aurora", "sea", "meadow")
	src.Add(domain.CategoryEmotion, "joy", "melancholy", "sorrow")
	return src
}

func TestBuild_LookupReturnsExactSyllableCounts(t *testing.T) {
	counter := prosody.NewCounter(nil)
	cache := Build(Default(), counter)

	for _, cat := range cache.Categories() {
		for n := 1; n <= 8; n++ {
			for _, w := range cache.Lookup(cat, n) {
				assert.Equal(t, n, counter.Count(w), "%s/%d holds %q", cat, n, w)
			}
		}
	}
}

func TestBuild_EveryWordInExactlyOneBucket(t *testing.T) {
	src := Default()
	cache := Build(src, prosody.NewCounter(nil))

	for _, cw := range src.Categories() {
		seen := make(map[string]int)
		for n := 1; n <= 10; n++ {
			for _, w := range cache.Lookup(cw.Category, n) {
				seen[w]++
			}
		}
		require.Len(t, seen, len(cw.Words), "category %s", cw.Category)
		for w, times := range seen {
			assert.Equal(t, 1, times, "word %q in %s", w, cw.Category)
		}
	}
	assert.Equal(t, src.Len(), cache.Size())
}

func TestBuild_OrderPreservingAndIdempotent(t *testing.T) {
	first := Build(testSource(), prosody.NewCounter(nil))
	second := Build(testSource(), prosody.NewCounter(nil))

	assert.Equal(t, []string{"sun", "moon", "sea"}, first.Lookup(domain.CategoryNature, 1))
	assert.Equal(t, []string{"river", "meadow"}, first.Lookup(domain.CategoryNature, 2))
	assert.Equal(t, first.Buckets(), second.Buckets())
	for _, cat := range first.Categories() {
		for n := 1; n <= 5; n++ {
			assert.Equal(t, first.Lookup(cat, n), second.Lookup(cat, n))
		}
	}
}

func TestBuild_CountsEachWordOnce(t *testing.T) {
	src := testSource()
	src.Add(domain.CategoryAbstract, "sun", "sorrow")
	counter := &countingCounter{}
	Build(src, counter)

	assert.Equal(t, 1, counter.calls["sun"])
	assert.Equal(t, 1, counter.calls["sorrow"])
}

func TestLookup_MissingBucketIsEmpty(t *testing.T) {
	cache := Build(testSource(), prosody.NewCounter(nil))
	assert.Empty(t, cache.Lookup(domain.CategoryNature, 9))
	assert.Empty(t, cache.Lookup("unknown", 1))
	assert.False(t, cache.Has("unknown"))
	assert.True(t, cache.Has(domain.CategoryEmotion))
}

func TestLookup_AppendDoesNotMutateCache(t *testing.T) {
	cache := Build(testSource(), prosody.NewCounter(nil))
	words := cache.Lookup(domain.CategoryNature, 1)
	_ = append(words, "intruder")
	assert.Equal(t, []string{"sun", "moon", "sea"}, cache.Lookup(domain.CategoryNature, 1))
}

func TestLookupUpTo(t *testing.T) {
	cache := Build(testSource(), prosody.NewCounter(nil))

	assert.Equal(t, []string{"sun", "moon", "sea", "river", "meadow"},
		cache.LookupUpTo(domain.CategoryNature, 2))
	assert.Empty(t, cache.LookupUpTo(domain.CategoryNature, 0))

	n, ok := cache.Syllables("aurora")
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.True(t, cache.Contains(domain.CategoryEmotion, "joy"))
	assert.False(t, cache.Contains(domain.CategoryNature, "joy"))
}

func TestBuild_NilSource(t *testing.T) {
	cache := Build(nil, prosody.NewCounter(nil))
	assert.Empty(t, cache.Categories())
	assert.Equal(t, 0, cache.Size())
}
