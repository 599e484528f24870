package prosody

import "github.com/alexanderramin/stanza/internal/phonetics"

// RhymeIndex answers rhyme queries. Lookup failures are reported as no
// rhymes.
type RhymeIndex struct {
	source phonetics.Source
}

// NewRhymeIndex creates a RhymeIndex backed by source. A nil source never
// finds rhymes.
func NewRhymeIndex(source phonetics.Source) *RhymeIndex {
	return &RhymeIndex{source: source}
}

// RhymesOf returns candidate rhymes for word, possibly empty.
func (x *RhymeIndex) RhymesOf(word string) []string {
	w := CleanWord(word)
	if x == nil || x.source == nil || w == "" {
		return nil
	}
	rhymes, err := x.source.Rhymes(w)
	if err != nil {
		return nil
	}
	return rhymes
}

// StressPattern returns the stress digits for word from its first
// pronunciation. Unknown words get an alternating stressed/unstressed
// pattern over their heuristic syllable count.
func (c *Counter) StressPattern(word string) []int {
	if c != nil && c.source != nil {
		phones, err := c.source.PhonesForWord(CleanWord(word))
		if err == nil && len(phones) > 0 {
			if p := phonetics.StressPattern(phones[0]); len(p) > 0 {
				return p
			}
		}
	}
	n := HeuristicCount(word)
	pattern := make([]int, n)
	for i := range pattern {
		if i%2 == 0 {
			pattern[i] = 1
		}
	}
	return pattern
}
