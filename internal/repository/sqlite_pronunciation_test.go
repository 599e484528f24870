package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/stanza/internal/phonetics"
	"github.com/alexanderramin/stanza/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededPronunciations(t *testing.T) *SQLitePronunciationRepo {
	t.Helper()
	repo := NewSQLitePronunciationRepo(testutil.NewTestDB(t))
	require.NoError(t, repo.ReplaceAll(context.Background(), testutil.NewTestEntries()))
	return repo
}

func TestPronunciationRepo_PhonesForWordKeepsVariantOrder(t *testing.T) {
	repo := seededPronunciations(t)
	ctx := context.Background()

	phones, err := repo.PhonesForWord(ctx, "AGAIN")
	require.NoError(t, err)
	assert.Equal(t, []string{"AH0 G EH1 N", "AH0 G EY1 N"}, phones)

	missing, err := repo.PhonesForWord(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestPronunciationRepo_WordsByRhymingPart(t *testing.T) {
	repo := seededPronunciations(t)

	words, err := repo.WordsByRhymingPart(context.Background(), "AH1 N")
	require.NoError(t, err)
	assert.Equal(t, []string{"done", "fun", "sun"}, words)
}

func TestPronunciationRepo_Count(t *testing.T) {
	repo := seededPronunciations(t)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestPronunciationRepo_ReplaceAllBatches(t *testing.T) {
	repo := NewSQLitePronunciationRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	entries := phonetics.Starter().Entries()
	require.Greater(t, len(entries), 0)

	require.NoError(t, repo.ReplaceAll(ctx, entries))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, phonetics.Starter().Len(), n)
}

func TestPronunciationSource_MatchesDictionary(t *testing.T) {
	src := NewPronunciationSource(seededPronunciations(t), time.Second)

	dict := phonetics.NewDictionary()
	for _, e := range testutil.NewTestEntries() {
		dict.Add(e.Word, e.Phones)
	}

	for _, word := range []string{"sun", "again", "river", "missing"} {
		want, _ := dict.Rhymes(word)
		got, err := src.Rhymes(word)
		require.NoError(t, err)
		assert.Equal(t, want, got, word)
	}

	rhymes, err := src.Rhymes("again")
	require.NoError(t, err)
	assert.Equal(t, []string{"rain", "ten"}, rhymes)
}

// countingRepo counts lookups and can be made to fail.
type countingRepo struct {
	PronunciationRepo
	lookups int
	err     error
}

func (c *countingRepo) PhonesForWord(ctx context.Context, word string) ([]string, error) {
	c.lookups++
	if c.err != nil {
		return nil, c.err
	}
	return c.PronunciationRepo.PhonesForWord(ctx, word)
}

func TestPronunciationSource_Memoizes(t *testing.T) {
	repo := &countingRepo{PronunciationRepo: seededPronunciations(t)}
	src := NewPronunciationSource(repo, 0)

	for i := 0; i < 3; i++ {
		phones, err := src.PhonesForWord("Sun")
		require.NoError(t, err)
		assert.Equal(t, []string{"S AH1 N"}, phones)
	}
	assert.Equal(t, 1, repo.lookups)
}

func TestPronunciationSource_ErrorsAreNotMemoized(t *testing.T) {
	repo := &countingRepo{PronunciationRepo: seededPronunciations(t), err: errors.New("locked")}
	src := NewPronunciationSource(repo, time.Second)

	_, err := src.PhonesForWord("sun")
	require.Error(t, err)
	_, err = src.Rhymes("sun")
	require.Error(t, err)

	repo.err = nil
	phones, err := src.PhonesForWord("sun")
	require.NoError(t, err)
	assert.NotEmpty(t, phones)
}

// slowRepo blocks until the lookup context is done.
type slowRepo struct {
	PronunciationRepo
}

func (slowRepo) PhonesForWord(ctx context.Context, _ string) ([]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestPronunciationSource_Timeout(t *testing.T) {
	src := NewPronunciationSource(slowRepo{}, 10*time.Millisecond)

	_, err := src.PhonesForWord("sun")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
