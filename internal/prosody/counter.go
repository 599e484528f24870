// Package prosody counts syllables and finds rhymes on top of a
// pronunciation source, falling back to spelling heuristics for unknown words.
package prosody

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/stanza/internal/phonetics"
)

const vowels = "aeiouy"

// Counter counts syllables. The zero value uses only the heuristic.
type Counter struct {
	source phonetics.Source
}

// NewCounter creates a Counter backed by source. A nil source means every
// word is counted heuristically.
func NewCounter(source phonetics.Source) *Counter {
	return &Counter{source: source}
}

// Count returns the syllable count of a single word, always >= 1.
//
// The first pronunciation variant wins when the source knows the word.
// Lookup failures count as one syllable rather than falling through to the
// heuristic.
func (c *Counter) Count(word string) int {
	w := CleanWord(word)
	if w == "" {
		return 1
	}
	if c != nil && c.source != nil {
		phones, err := c.source.PhonesForWord(w)
		if err != nil {
			return 1
		}
		if len(phones) > 0 {
			if n := phonetics.SyllableCount(phones[0]); n > 0 {
				return n
			}
			return 1
		}
	}
	return HeuristicCount(w)
}

// CountPhrase sums Count over the whitespace-separated tokens of text.
// Blank text counts as zero.
func (c *Counter) CountPhrase(text string) int {
	total := 0
	for _, tok := range strings.Fields(text) {
		total += c.Count(tok)
	}
	return total
}

// HeuristicCount estimates syllables from spelling: vowel-cluster starts,
// minus a trailing silent "e", never below one.
func HeuristicCount(word string) int {
	w := CleanWord(word)
	if w == "" {
		return 1
	}

	count := 0
	if isVowel(rune(w[0])) {
		count++
	}
	for i := 1; i < len(w); i++ {
		if isVowel(rune(w[i])) && !isVowel(rune(w[i-1])) {
			count++
		}
	}
	if strings.HasSuffix(w, "e") {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}

// CleanWord lower-cases word and trims surrounding punctuation.
func CleanWord(word string) string {
	return strings.TrimFunc(strings.ToLower(strings.TrimSpace(word)), func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}
