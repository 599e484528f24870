package testutil

import (
	"time"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/phonetics"
	"github.com/alexanderramin/stanza/internal/vocabulary"
	"github.com/google/uuid"
)

// ImportOption customizes a test lexicon import.
type ImportOption func(*domain.LexiconImport)

func WithImportedAt(t time.Time) ImportOption {
	return func(imp *domain.LexiconImport) {
		imp.ImportedAt = t
	}
}

func WithEntries(n int) ImportOption {
	return func(imp *domain.LexiconImport) {
		imp.Entries = n
	}
}

func NewTestImport(kind domain.LexiconKind, opts ...ImportOption) *domain.LexiconImport {
	imp := &domain.LexiconImport{
		ID:         uuid.New().String(),
		Kind:       kind,
		Source:     "test",
		Entries:    1,
		ImportedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// NewTestVocabulary returns a small two-category vocabulary.
func NewTestVocabulary() *vocabulary.Source {
	src := vocabulary.NewSource()
	src.Add(domain.CategoryNature, "sun", "river", "moon", "meadow", "sea")
	src.Add(domain.CategoryEmotion, "joy", "sorrow", "longing")
	return src
}

// NewTestEntries returns CMU entries with a rhyme family and a word with two
// pronunciations.
func NewTestEntries() []phonetics.Entry {
	return []phonetics.Entry{
		{Word: "sun", Phones: "S AH1 N"},
		{Word: "fun", Phones: "F AH1 N"},
		{Word: "done", Phones: "D AH1 N"},
		{Word: "again", Phones: "AH0 G EH1 N"},
		{Word: "again(2)", Phones: "AH0 G EY1 N"},
		{Word: "rain", Phones: "R EY1 N"},
		{Word: "ten", Phones: "T EH1 N"},
		{Word: "river", Phones: "R IH1 V ER0"},
	}
}
