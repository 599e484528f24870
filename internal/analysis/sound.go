package analysis

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/stanza/internal/prosody"
)

// StressCounter gives per-word stress patterns and syllable counts.
type StressCounter interface {
	StressPattern(word string) []int
	Count(word string) int
}

// Meter returns the stress digits of every non-blank line, word by word.
func Meter(poem string, counter StressCounter) [][]int {
	lines := Lines(poem)
	out := make([][]int, 0, len(lines))
	for _, line := range lines {
		pattern := []int{}
		for _, word := range strings.Fields(line) {
			pattern = append(pattern, counter.StressPattern(word)...)
		}
		out = append(out, pattern)
	}
	return out
}

// minAlliterationRun is the shortest run of words reported as alliteration.
const minAlliterationRun = 3

// Alliteration finds runs of at least three consecutive words sharing an
// initial letter. Words of two letters or fewer are skipped without
// breaking a run.
func Alliteration(poem string) [][]string {
	var (
		runs    [][]string
		current []string
		initial rune
	)
	flush := func() {
		if len(current) >= minAlliterationRun {
			runs = append(runs, current)
		}
	}
	for _, tok := range tokens(poem) {
		if len([]rune(tok)) <= 2 {
			continue
		}
		first := unicode.ToLower([]rune(tok)[0])
		if first == initial && len(current) > 0 {
			current = append(current, tok)
			continue
		}
		flush()
		initial = first
		current = []string{tok}
	}
	flush()
	return runs
}

// Assonance groups words by their vowel sequence, keeping sequences of two
// or more vowels shared by at least two words.
func Assonance(poem string) map[string][]string {
	return groupByPattern(poem, func(r rune) bool { return strings.ContainsRune("aeiou", r) })
}

// Consonance groups words by their consonant sequence, keeping sequences of
// two or more consonants shared by at least two words.
func Consonance(poem string) map[string][]string {
	return groupByPattern(poem, func(r rune) bool {
		return r >= 'a' && r <= 'z' && !strings.ContainsRune("aeiou", r)
	})
}

func groupByPattern(poem string, keep func(rune) bool) map[string][]string {
	groups := make(map[string][]string)
	for _, field := range strings.Fields(poem) {
		word := prosody.CleanWord(field)
		var b strings.Builder
		for _, r := range word {
			if keep(r) {
				b.WriteRune(r)
			}
		}
		if pattern := b.String(); len(pattern) >= 2 {
			groups[pattern] = append(groups[pattern], word)
		}
	}
	for k, words := range groups {
		if len(words) < 2 {
			delete(groups, k)
		}
	}
	return groups
}

// tokens splits text into purely alphabetic words.
func tokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })
}
