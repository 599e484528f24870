// Package analysis inspects finished poems: rhyme scheme, meter, sound
// devices, imagery and line structure.
package analysis

import (
	"strings"

	"github.com/alexanderramin/stanza/internal/prosody"
)

// RhymeIndex lists rhymes of a word.
type RhymeIndex interface {
	RhymesOf(word string) []string
}

// rhymeKeyLen is how many leading rhymes identify a rhyme class.
const rhymeKeyLen = 3

// RhymeScheme labels each non-blank line of poem with a letter. Lines whose
// last words share their first three rhymes (or, with no rhymes, are the
// same word) get the same letter; letters are handed out in order of first
// appearance. Blank input yields "".
func RhymeScheme(poem string, rhymes RhymeIndex) string {
	labels := make(map[string]byte)
	var b strings.Builder
	for _, line := range Lines(poem) {
		fields := strings.Fields(line)
		word := prosody.CleanWord(fields[len(fields)-1])
		key := rhymeKey(word, rhymes)
		label, ok := labels[key]
		if !ok {
			label = schemeLabel(len(labels))
			labels[key] = label
		}
		b.WriteByte(label)
	}
	return b.String()
}

func rhymeKey(word string, rhymes RhymeIndex) string {
	var found []string
	if rhymes != nil && word != "" {
		found = rhymes.RhymesOf(word)
	}
	if len(found) == 0 {
		return "w:" + word
	}
	if len(found) > rhymeKeyLen {
		found = found[:rhymeKeyLen]
	}
	return "r:" + strings.Join(found, ",")
}

// schemeLabel maps 0..25 to A..Z, 26..51 to a..z and anything else to '?'.
func schemeLabel(i int) byte {
	switch {
	case i < 26:
		return byte('A' + i)
	case i < 52:
		return byte('a' + i - 26)
	default:
		return '?'
	}
}

// Lines returns the trimmed non-blank lines of poem.
func Lines(poem string) []string {
	var out []string
	for _, line := range strings.Split(poem, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
