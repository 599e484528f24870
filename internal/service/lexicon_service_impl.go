package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/db"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/phonetics"
	"github.com/alexanderramin/stanza/internal/repository"
	"github.com/alexanderramin/stanza/internal/vocabulary"
	"github.com/google/uuid"
)

// recentImportLimit caps the import history returned by Stats.
const recentImportLimit = 5

type lexiconService struct {
	vocab    repository.VocabularyRepo
	prons    repository.PronunciationRepo
	imports  repository.LexiconImportRepo
	uow      db.UnitOfWork
	engine   *Engine
	observer UseCaseObserver
}

// NewLexiconService creates a LexiconService. engine, when non-nil, supplies
// the origins reported by Stats.
func NewLexiconService(
	vocab repository.VocabularyRepo,
	prons repository.PronunciationRepo,
	imports repository.LexiconImportRepo,
	uow db.UnitOfWork,
	engine *Engine,
	observers ...UseCaseObserver,
) LexiconService {
	return &lexiconService{
		vocab:    vocab,
		prons:    prons,
		imports:  imports,
		uow:      uow,
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *lexiconService) ImportVocabulary(ctx context.Context, path string) (imp *domain.LexiconImport, err error) {
	run := startUseCase(s.observer, "import-vocabulary")
	defer func() { run.finish(ctx, err) }()
	run.fields["path"] = path

	src := vocabulary.Default()
	if path != "" {
		src, err = vocabulary.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading vocabulary: %w", err)
		}
	}

	imp = newImport(domain.LexiconVocabulary, path, src.Len())
	run.fields["entries"] = imp.Entries
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteVocabularyRepo(tx).ReplaceAll(ctx, src); err != nil {
			return err
		}
		return repository.NewSQLiteLexiconImportRepo(tx).Create(ctx, imp)
	})
	if err != nil {
		return nil, fmt.Errorf("storing vocabulary: %w", err)
	}
	return imp, nil
}

func (s *lexiconService) ImportDictionary(ctx context.Context, path string) (imp *domain.LexiconImport, err error) {
	run := startUseCase(s.observer, "import-dictionary")
	defer func() { run.finish(ctx, err) }()
	run.fields["path"] = path

	dict := phonetics.Starter()
	if path != "" {
		dict, err = phonetics.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading dictionary: %w", err)
		}
	}
	if dict.Len() == 0 {
		return nil, fmt.Errorf("dictionary %s has no entries", path)
	}

	imp = newImport(domain.LexiconDictionary, path, dict.Len())
	run.fields["entries"] = imp.Entries
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLitePronunciationRepo(tx).ReplaceAll(ctx, dict.Entries()); err != nil {
			return err
		}
		return repository.NewSQLiteLexiconImportRepo(tx).Create(ctx, imp)
	})
	if err != nil {
		return nil, fmt.Errorf("storing dictionary: %w", err)
	}
	return imp, nil
}

func (s *lexiconService) Stats(ctx context.Context) (stats *app.LexiconStats, err error) {
	run := startUseCase(s.observer, "lexicon-stats")
	defer func() { run.finish(ctx, err) }()

	stats = &app.LexiconStats{
		VocabularyOrigin: app.OriginBuiltin,
		DictionaryOrigin: app.OriginBuiltin,
	}
	if s.engine != nil {
		stats.VocabularyOrigin = s.engine.VocabularyOrigin
		stats.DictionaryOrigin = s.engine.DictionaryOrigin
	}

	if stats.Vocabulary, err = s.vocab.CountByCategory(ctx); err != nil {
		return nil, fmt.Errorf("counting vocabulary: %w", err)
	}
	if stats.Pronunciations, err = s.prons.Count(ctx); err != nil {
		return nil, fmt.Errorf("counting pronunciations: %w", err)
	}
	if stats.RecentImports, err = s.imports.ListRecent(ctx, recentImportLimit); err != nil {
		return nil, fmt.Errorf("listing imports: %w", err)
	}
	return stats, nil
}

func newImport(kind domain.LexiconKind, path string, entries int) *domain.LexiconImport {
	source := path
	if source == "" {
		source = string(app.OriginBuiltin)
	}
	return &domain.LexiconImport{
		ID:         uuid.New().String(),
		Kind:       kind,
		Source:     source,
		Entries:    entries,
		ImportedAt: time.Now().UTC(),
	}
}
