// Package phonetics provides pronunciation lookup over CMU-style
// dictionaries: ARPAbet phones per word, stress digits and rhyming parts.
package phonetics

import "strings"

// Source resolves pronunciations and rhymes for a word. Implementations
// return an empty result for unknown words; an error means the lookup itself
// failed.
type Source interface {
	// PhonesForWord returns every pronunciation variant of word, in
	// dictionary order. Each variant is a space-separated ARPAbet string
	// such as "S AH1 N".
	PhonesForWord(word string) ([]string, error)

	// Rhymes returns the words sharing a rhyming part with any variant of
	// word, excluding word itself, sorted and de-duplicated.
	Rhymes(word string) ([]string, error)
}

// Stresses returns the stress digits of a pronunciation in order, one per
// vowel phone: "D IH0 L AY1 T" -> "01".
func Stresses(phones string) string {
	var b strings.Builder
	for _, p := range strings.Fields(phones) {
		last := p[len(p)-1]
		if last >= '0' && last <= '2' {
			b.WriteByte(last)
		}
	}
	return b.String()
}

// StressPattern is Stresses as integers.
func StressPattern(phones string) []int {
	s := Stresses(phones)
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i] - '0')
	}
	return out
}

// SyllableCount is the number of vowel phones in a pronunciation.
func SyllableCount(phones string) int {
	return len(Stresses(phones))
}

// RhymingPart returns the phones from the last primary- or
// secondary-stressed vowel to the end. When no such vowel exists past the
// first phone, the whole pronunciation is returned.
func RhymingPart(phones string) string {
	list := strings.Fields(phones)
	for i := len(list) - 1; i > 0; i-- {
		last := list[i][len(list[i])-1]
		if last == '1' || last == '2' {
			return strings.Join(list[i:], " ")
		}
	}
	return strings.Join(list, " ")
}

// NormalizeWord lower-cases a dictionary headword and drops a variant marker
// such as "(2)".
func NormalizeWord(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
		word = word[:i]
	}
	return word
}
