package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/compose"
	"github.com/alexanderramin/stanza/internal/config"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/generation"
	"github.com/alexanderramin/stanza/internal/phonetics"
	"github.com/alexanderramin/stanza/internal/prosody"
	"github.com/alexanderramin/stanza/internal/repository"
	"github.com/alexanderramin/stanza/internal/vocabulary"
)

// Engine holds the read-only resources shared by every generation run: the
// vocabulary cache, the syllable counter and the rhyme index. Per-run state
// (random source, generator, composer) is created by Session.
type Engine struct {
	Cache            *vocabulary.Cache
	Counter          *prosody.Counter
	Rhymes           *prosody.RhymeIndex
	Policy           generation.Policy
	FreeVerse        domain.FreeVerseRange
	VocabularyOrigin app.Origin
	DictionaryOrigin app.Origin
}

// NewEngine assembles an Engine from explicit resources.
func NewEngine(src *vocabulary.Source, dict phonetics.Source, policy generation.Policy, fv domain.FreeVerseRange) *Engine {
	counter := prosody.NewCounter(dict)
	return &Engine{
		Cache:            vocabulary.Build(src, counter),
		Counter:          counter,
		Rhymes:           prosody.NewRhymeIndex(dict),
		Policy:           policy,
		FreeVerse:        fv,
		VocabularyOrigin: app.OriginBuiltin,
		DictionaryOrigin: app.OriginBuiltin,
	}
}

// LoadEngine picks each lexicon from, in order: the configured file, the
// database, the built-in data. Either repo may be nil.
func LoadEngine(
	ctx context.Context,
	cfg config.Config,
	vocab repository.VocabularyRepo,
	prons repository.PronunciationRepo,
) (*Engine, error) {
	src, vocabOrigin, err := loadVocabulary(ctx, cfg.VocabularyPath, vocab)
	if err != nil {
		return nil, err
	}
	dict, dictOrigin, err := loadDictionary(ctx, cfg.DictionaryPath, prons, cfg.LookupTimeout())
	if err != nil {
		return nil, err
	}

	e := NewEngine(src, dict, cfg.Policy(), cfg.FreeVerseRange())
	e.VocabularyOrigin = vocabOrigin
	e.DictionaryOrigin = dictOrigin
	return e, nil
}

func loadVocabulary(ctx context.Context, path string, repo repository.VocabularyRepo) (*vocabulary.Source, app.Origin, error) {
	if path != "" {
		src, err := vocabulary.LoadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("loading vocabulary: %w", err)
		}
		return src, app.OriginFile, nil
	}
	if repo != nil {
		src, err := repo.Load(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("loading stored vocabulary: %w", err)
		}
		if src.Len() > 0 {
			return src, app.OriginDatabase, nil
		}
	}
	return vocabulary.Default(), app.OriginBuiltin, nil
}

func loadDictionary(ctx context.Context, path string, repo repository.PronunciationRepo, timeout time.Duration) (phonetics.Source, app.Origin, error) {
	if path != "" {
		dict, err := phonetics.LoadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("loading dictionary: %w", err)
		}
		return dict, app.OriginFile, nil
	}
	if repo != nil {
		n, err := repo.Count(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("counting stored pronunciations: %w", err)
		}
		if n > 0 {
			return repository.NewPronunciationSource(repo, timeout), app.OriginDatabase, nil
		}
	}
	return phonetics.Starter(), app.OriginBuiltin, nil
}

// Session is one seeded generation run. It is not safe for concurrent use.
type Session struct {
	Seed      int64
	Generator *generation.Generator
	Composer  *compose.Composer
}

// NewSession creates a generator and composer sharing one random source.
// A nil logger disables step logging.
func (e *Engine) NewSession(seed int64, logger *slog.Logger) *Session {
	rng := generation.NewRand(seed)
	gen := generation.NewGenerator(e.Cache, e.Counter,
		generation.WithRand(rng),
		generation.WithPolicy(e.Policy),
		generation.WithObserver(generation.NewLogObserver(logger)),
	)
	return &Session{
		Seed:      seed,
		Generator: gen,
		Composer: compose.NewComposer(gen, e.Rhymes,
			compose.WithRand(rng),
			compose.WithFreeVerseRange(e.FreeVerse),
		),
	}
}
