package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/db"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/phonetics"
	"github.com/alexanderramin/stanza/internal/repository"
	"github.com/alexanderramin/stanza/internal/testutil"
	"github.com/alexanderramin/stanza/internal/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lexiconFixture struct {
	db      *sql.DB
	vocab   *repository.SQLiteVocabularyRepo
	prons   *repository.SQLitePronunciationRepo
	imports *repository.SQLiteLexiconImportRepo
}

func newLexiconFixture(t *testing.T) lexiconFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return lexiconFixture{
		db:      database,
		vocab:   repository.NewSQLiteVocabularyRepo(database),
		prons:   repository.NewSQLitePronunciationRepo(database),
		imports: repository.NewSQLiteLexiconImportRepo(database),
	}
}

func (f lexiconFixture) service(uow db.UnitOfWork, engine *Engine, observers ...UseCaseObserver) LexiconService {
	if uow == nil {
		uow = testutil.NewTestUoW(f.db)
	}
	return NewLexiconService(f.vocab, f.prons, f.imports, uow, engine, observers...)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLexiconService_ImportBuiltins(t *testing.T) {
	f := newLexiconFixture(t)
	svc := f.service(nil, nil)
	ctx := context.Background()

	imp, err := svc.ImportVocabulary(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.LexiconVocabulary, imp.Kind)
	assert.Equal(t, "built-in", imp.Source)
	assert.Equal(t, vocabulary.Default().Len(), imp.Entries)

	imp, err = svc.ImportDictionary(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.LexiconDictionary, imp.Kind)
	assert.Equal(t, phonetics.Starter().Len(), imp.Entries)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, vocabulary.Default().Len(), stats.TotalWords())
	assert.Len(t, stats.Vocabulary, len(domain.BuiltinCategories))
	assert.Equal(t, phonetics.Starter().Len(), stats.Pronunciations)
	require.Len(t, stats.RecentImports, 2)
	assert.Equal(t, app.OriginBuiltin, stats.VocabularyOrigin)
}

func TestLexiconService_ImportFiles(t *testing.T) {
	f := newLexiconFixture(t)
	svc := f.service(nil, nil)
	ctx := context.Background()

	vocabPath := writeFile(t, "words.yaml", `
categories:
  - name: Weather
    words: [rain, fog, thunder]
`)
	dictPath := writeFile(t, "words.dict", `
;;; test dictionary
RAIN  R EY1 N
FOG  F AA1 G
THUNDER  TH AH1 N D ER0
`)

	imp, err := svc.ImportVocabulary(ctx, vocabPath)
	require.NoError(t, err)
	assert.Equal(t, vocabPath, imp.Source)
	assert.Equal(t, 3, imp.Entries)

	_, err = svc.ImportDictionary(ctx, dictPath)
	require.NoError(t, err)

	src, err := f.vocab.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"rain", "fog", "thunder"}, src.Words("weather"))

	phones, err := f.prons.PhonesForWord(ctx, "thunder")
	require.NoError(t, err)
	assert.Equal(t, []string{"TH AH1 N D ER0"}, phones)

	latest, err := f.imports.Latest(ctx, domain.LexiconDictionary)
	require.NoError(t, err)
	assert.Equal(t, dictPath, latest.Source)
}

func TestLexiconService_ImportMissingFile(t *testing.T) {
	f := newLexiconFixture(t)
	obs := &recordingObserver{}
	svc := f.service(nil, nil, obs)
	ctx := context.Background()

	_, err := svc.ImportVocabulary(ctx, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.False(t, obs.last().Success)

	_, err = svc.ImportDictionary(ctx, filepath.Join(t.TempDir(), "nope.dict"))
	require.Error(t, err)

	recent, err := f.imports.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestLexiconService_ImportEmptyDictionary(t *testing.T) {
	f := newLexiconFixture(t)
	svc := f.service(nil, nil)

	_, err := svc.ImportDictionary(context.Background(), writeFile(t, "empty.dict", ";;; nothing\n"))
	assert.Error(t, err)
}

func TestLexiconService_ImportRollsBackOnFailure(t *testing.T) {
	f := newLexiconFixture(t)
	ctx := context.Background()
	require.NoError(t, f.vocab.ReplaceAll(ctx, testutil.NewTestVocabulary()))

	boom := errors.New("disk full")
	svc := f.service(&testutil.FailOnNthExecUoW{DB: f.db, FailOn: 2, Err: boom}, nil)

	_, err := svc.ImportVocabulary(ctx, "")
	require.ErrorIs(t, err, boom)

	src, err := f.vocab.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutil.NewTestVocabulary().Categories(), src.Categories())

	recent, err := f.imports.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestLexiconService_StatsEmptyStore(t *testing.T) {
	f := newLexiconFixture(t)
	engine := newTestEngine(t)
	engine.DictionaryOrigin = app.OriginFile
	svc := f.service(nil, engine)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalWords())
	assert.Zero(t, stats.Pronunciations)
	assert.Empty(t, stats.RecentImports)
	assert.Equal(t, app.OriginFile, stats.DictionaryOrigin)
	assert.Equal(t, app.OriginBuiltin, stats.VocabularyOrigin)
}

func TestLexiconService_StatsLimitsRecentImports(t *testing.T) {
	f := newLexiconFixture(t)
	svc := f.service(nil, nil)
	ctx := context.Background()

	for range recentImportLimit + 2 {
		_, err := svc.ImportDictionary(ctx, "")
		require.NoError(t, err)
	}
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats.RecentImports, recentImportLimit)
}
