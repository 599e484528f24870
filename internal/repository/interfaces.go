package repository

import (
	"context"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/phonetics"
	"github.com/alexanderramin/stanza/internal/vocabulary"
)

type VocabularyRepo interface {
	// ReplaceAll swaps the stored vocabulary for src, keeping src's order.
	ReplaceAll(ctx context.Context, src *vocabulary.Source) error
	// Load returns the stored vocabulary in insertion order. An empty store
	// yields an empty source.
	Load(ctx context.Context) (*vocabulary.Source, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
}

type PronunciationRepo interface {
	ReplaceAll(ctx context.Context, entries []phonetics.Entry) error
	PhonesForWord(ctx context.Context, word string) ([]string, error)
	WordsByRhymingPart(ctx context.Context, part string) ([]string, error)
	Count(ctx context.Context) (int, error)
}

type LexiconImportRepo interface {
	Create(ctx context.Context, imp *domain.LexiconImport) error
	GetByID(ctx context.Context, id string) (*domain.LexiconImport, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.LexiconImport, error)
	Latest(ctx context.Context, kind domain.LexiconKind) (*domain.LexiconImport, error)
}
