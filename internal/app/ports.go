package app

import (
	"context"

	"github.com/alexanderramin/stanza/internal/domain"
)

type ComposeUseCase interface {
	Compose(ctx context.Context, req PoemRequest) (*PoemResponse, error)
}

type LineUseCase interface {
	GenerateLine(ctx context.Context, req LineRequest) (*LineResponse, error)
}

type AnalyzeUseCase interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)
}

type ImportLexiconUseCase interface {
	// ImportVocabulary replaces the stored vocabulary with the YAML at path,
	// or with the built-in vocabulary when path is empty.
	ImportVocabulary(ctx context.Context, path string) (*domain.LexiconImport, error)
	// ImportDictionary replaces the stored pronunciations with the CMU
	// dictionary at path, or with the starter dictionary when path is empty.
	ImportDictionary(ctx context.Context, path string) (*domain.LexiconImport, error)
}

type LexiconStatsUseCase interface {
	Stats(ctx context.Context) (*LexiconStats, error)
}
