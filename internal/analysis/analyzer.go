package analysis

import (
	"strings"

	"github.com/alexanderramin/stanza/internal/domain"
)

// Vocabulary answers category membership for imagery tagging.
type Vocabulary interface {
	Categories() []domain.Category
	Contains(category domain.Category, word string) bool
}

// Imagery lists, per category, the poem's words that belong to it in text
// order. Categories with no hits are omitted.
func Imagery(poem string, vocab Vocabulary) map[domain.Category][]string {
	out := make(map[domain.Category][]string)
	if vocab == nil {
		return out
	}
	cats := vocab.Categories()
	for _, tok := range tokens(strings.ToLower(poem)) {
		for _, c := range cats {
			if vocab.Contains(c, tok) {
				out[c] = append(out[c], tok)
			}
		}
	}
	return out
}

// Structure summarizes line and word counts.
type Structure struct {
	Lines            int
	Words            int
	SyllablesPerLine []int
}

// Shape counts the non-blank lines, words and syllables per line of poem.
func Shape(poem string, counter StressCounter) Structure {
	lines := Lines(poem)
	s := Structure{Lines: len(lines), SyllablesPerLine: make([]int, 0, len(lines))}
	for _, line := range lines {
		n := 0
		for _, w := range strings.Fields(line) {
			s.Words++
			n += counter.Count(w)
		}
		s.SyllablesPerLine = append(s.SyllablesPerLine, n)
	}
	return s
}

// Report is the complete analysis of a poem.
type Report struct {
	RhymeScheme  string
	Meter        [][]int
	Alliteration [][]string
	Assonance    map[string][]string
	Consonance   map[string][]string
	Imagery      map[domain.Category][]string
	Structure    Structure
}

// Analyzer runs every analysis over one set of lookups.
type Analyzer struct {
	counter StressCounter
	rhymes  RhymeIndex
	vocab   Vocabulary
}

// NewAnalyzer returns an Analyzer. rhymes and vocab may be nil.
func NewAnalyzer(counter StressCounter, rhymes RhymeIndex, vocab Vocabulary) *Analyzer {
	return &Analyzer{counter: counter, rhymes: rhymes, vocab: vocab}
}

// Analyze returns the full report for poem.
func (a *Analyzer) Analyze(poem string) Report {
	return Report{
		RhymeScheme:  RhymeScheme(poem, a.rhymes),
		Meter:        Meter(poem, a.counter),
		Alliteration: Alliteration(poem),
		Assonance:    Assonance(poem),
		Consonance:   Consonance(poem),
		Imagery:      Imagery(poem, a.vocab),
		Structure:    Shape(poem, a.counter),
	}
}
