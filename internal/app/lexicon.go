package app

import "github.com/alexanderramin/stanza/internal/domain"

// Origin names where a loaded lexicon came from.
type Origin string

const (
	OriginBuiltin  Origin = "built-in"
	OriginDatabase Origin = "database"
	OriginFile     Origin = "file"
)

type LexiconStats struct {
	Vocabulary       []domain.CategoryCount
	VocabularyOrigin Origin
	Pronunciations   int
	DictionaryOrigin Origin
	RecentImports    []*domain.LexiconImport
}

// TotalWords sums the vocabulary category counts.
func (s *LexiconStats) TotalWords() int {
	n := 0
	for _, c := range s.Vocabulary {
		n += c.Words
	}
	return n
}
