package domain

import "fmt"

type FormKind string

const (
	FormHaiku     FormKind = "haiku"
	FormTanka     FormKind = "tanka"
	FormSonnet    FormKind = "sonnet"
	FormFreeVerse FormKind = "free_verse"
)

// ValidFormKinds is the canonical set of accepted form names, including the
// hyphenated alias for free verse used on the command line.
var ValidFormKinds = map[string]FormKind{
	"haiku":      FormHaiku,
	"tanka":      FormTanka,
	"sonnet":     FormSonnet,
	"free_verse": FormFreeVerse,
	"free-verse": FormFreeVerse,
	"free":       FormFreeVerse,
}

// ParseFormKind resolves a form name.
func ParseFormKind(s string) (FormKind, error) {
	k, ok := ValidFormKinds[s]
	if !ok {
		return "", fmt.Errorf("unknown poem form %q", s)
	}
	return k, nil
}

// PoemForm is the structural template of a fixed form. Free verse has no
// fixed template and is driven by FreeVerseRange instead.
type PoemForm struct {
	Kind        FormKind
	Syllables   []int
	RhymeScheme string      // one letter per line, empty when unrhymed
	Focus       []Category  // per-line mood rotation when no mood is given
	Styles      []LineStyle // per-line style, same length as Syllables
}

// Lines returns the number of lines in the form.
func (f PoemForm) Lines() int { return len(f.Syllables) }

// FreeVerseRange bounds the random walk used for free verse.
type FreeVerseRange struct {
	MinLines     int
	MaxLines     int
	MinSyllables int
	MaxSyllables int
	MaxDelta     int
}

// DefaultFreeVerseRange returns the stock bounds: 4-8 lines of 5-12 syllables,
// moving at most 2 syllables between lines.
func DefaultFreeVerseRange() FreeVerseRange {
	return FreeVerseRange{
		MinLines:     4,
		MaxLines:     8,
		MinSyllables: 5,
		MaxSyllables: 12,
		MaxDelta:     2,
	}
}
