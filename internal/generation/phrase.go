package generation

import (
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/vocabulary"
)

// imageCategories are the categories image phrases draw from by default.
var imageCategories = []domain.Category{
	domain.CategoryNature,
	domain.CategorySensory,
	domain.CategoryAbstract,
}

// PhraseBuilder fills templated image phrases from the vocabulary cache
// under a syllable budget.
type PhraseBuilder struct {
	cache   *vocabulary.Cache
	counter SyllableCounter
	rng     Rand
	retries int
}

// NewPhraseBuilder returns a builder that tries each slot at most retries
// times before abandoning the phrase.
func NewPhraseBuilder(cache *vocabulary.Cache, counter SyllableCounter, rng Rand, retries int) *PhraseBuilder {
	if retries < 1 {
		retries = 1
	}
	return &PhraseBuilder{cache: cache, counter: counter, rng: rng, retries: retries}
}

// Build picks a template sized for budget and fills every slot. mood must
// be a category known to the cache or empty. The phrase is abandoned when
// the budget runs out before the last slot or a slot cannot be filled.
func (b *PhraseBuilder) Build(budget int, mood domain.Category) Outcome {
	templates := simpleTemplates
	if budget >= complexThreshold {
		templates = complexTemplates
	}
	tmpl := templates[b.rng.Intn(len(templates))]

	cats := b.activeCategories(mood)
	if len(cats) == 0 {
		return abandon(ReasonNoCandidates)
	}

	remaining := budget
	if tmpl.literal != "" {
		remaining -= b.counter.CountPhrase(tmpl.literal)
	}

	words := make([]string, 0, tmpl.slots)
	for i := 0; i < tmpl.slots; i++ {
		if remaining <= 0 {
			return abandon(ReasonBudgetSpent)
		}
		word, ok := b.pickWord(cats, mood, remaining)
		if !ok {
			return abandon(ReasonRetriesExhausted)
		}
		words = append(words, word)
		remaining -= syllablesOf(b.cache, b.counter, word)
	}
	return accept(tmpl.fill(words))
}

// Simple returns a single word from the mood category (or a random image
// category) at the smallest syllable count that has any, else FillerWord.
func (b *PhraseBuilder) Simple(budget int, mood domain.Category) string {
	cat := mood
	if cat == "" {
		cats := b.activeCategories("")
		if len(cats) == 0 {
			return FillerWord
		}
		cat = cats[b.rng.Intn(len(cats))]
	}
	for n := 1; n <= budget; n++ {
		if words := b.cache.Lookup(cat, n); len(words) > 0 {
			return words[b.rng.Intn(len(words))]
		}
	}
	return FillerWord
}

func (b *PhraseBuilder) pickWord(cats []domain.Category, mood domain.Category, remaining int) (string, bool) {
	for attempt := 0; attempt < b.retries; attempt++ {
		var cat domain.Category
		if attempt == 0 && mood != "" {
			cat = mood
		} else {
			cat = cats[b.rng.Intn(len(cats))]
		}
		candidates := b.cache.LookupUpTo(cat, remaining)
		if len(candidates) == 0 {
			continue
		}
		word := candidates[b.rng.Intn(len(candidates))]
		if syllablesOf(b.cache, b.counter, word) <= remaining {
			return word, true
		}
	}
	return "", false
}

// activeCategories lists the image categories present in the cache, or
// every cache category when none are. A mood goes first.
func (b *PhraseBuilder) activeCategories(mood domain.Category) []domain.Category {
	var cats []domain.Category
	for _, c := range imageCategories {
		if b.cache.Has(c) {
			cats = append(cats, c)
		}
	}
	if len(cats) == 0 {
		cats = b.cache.Categories()
	}
	if mood == "" {
		return cats
	}
	out := []domain.Category{mood}
	for _, c := range cats {
		if c != mood {
			out = append(out, c)
		}
	}
	return out
}

func syllablesOf(cache *vocabulary.Cache, counter SyllableCounter, word string) int {
	if n, ok := cache.Syllables(word); ok && n > 0 {
		return n
	}
	if n := counter.Count(word); n > 0 {
		return n
	}
	return 1
}
