package domain

import (
	"fmt"
	"time"
)

// LexiconKind identifies what a lexicon import loaded.
type LexiconKind string

const (
	LexiconVocabulary LexiconKind = "vocabulary"
	LexiconDictionary LexiconKind = "dictionary"
)

// ParseLexiconKind resolves a lexicon kind name.
func ParseLexiconKind(s string) (LexiconKind, error) {
	switch k := LexiconKind(s); k {
	case LexiconVocabulary, LexiconDictionary:
		return k, nil
	}
	return "", fmt.Errorf("unknown lexicon kind %q", s)
}

// LexiconImport records one replacement of a stored lexicon.
type LexiconImport struct {
	ID         string
	Kind       LexiconKind
	Source     string
	Entries    int
	ImportedAt time.Time
}

// CategoryCount is the number of stored words in a category.
type CategoryCount struct {
	Category Category
	Words    int
}
