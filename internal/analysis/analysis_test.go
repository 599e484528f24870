package analysis

import (
	"testing"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/phonetics"
	"github.com/alexanderramin/stanza/internal/prosody"
	"github.com/alexanderramin/stanza/internal/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapRhymes map[string][]string

func (m mapRhymes) RhymesOf(word string) []string { return m[word] }

func TestRhymeScheme_StarterDictionary(t *testing.T) {
	rhymes := prosody.NewRhymeIndex(phonetics.Starter())
	assert.Equal(t, "AAB", RhymeScheme("sun\nfun\nsky", rhymes))
	assert.Equal(t, "AAB", RhymeScheme("The morning Sun,\n  all is fun!\n\nblue sky", rhymes))
}

func TestRhymeScheme_BlankInput(t *testing.T) {
	assert.Equal(t, "", RhymeScheme("", mapRhymes{}))
	assert.Equal(t, "", RhymeScheme(" \n\n\t\n", mapRhymes{}))
}

func TestRhymeScheme_UnknownWordsMatchOnlyThemselves(t *testing.T) {
	assert.Equal(t, "ABA", RhymeScheme("a glint\na shard\nanother glint", nil))
}

func TestRhymeScheme_OnlyFirstThreeRhymesCount(t *testing.T) {
	rhymes := mapRhymes{
		"day":  {"bay", "clay", "gray", "may"},
		"way":  {"bay", "clay", "gray", "stay"},
		"dawn": {"bay", "clay"},
	}
	assert.Equal(t, "AAB", RhymeScheme("day\nway\ndawn", rhymes))
}

func TestRhymeScheme_LabelsPastZ(t *testing.T) {
	poem := ""
	for i := 0; i < 60; i++ {
		poem += "w" + string(rune('a'+i%26)) + string(rune('a'+i/26)) + "\n"
	}
	scheme := RhymeScheme(poem, nil)
	require.Len(t, scheme, 60)
	assert.Equal(t, byte('A'), scheme[0])
	assert.Equal(t, byte('Z'), scheme[25])
	assert.Equal(t, byte('a'), scheme[26])
	assert.Equal(t, byte('z'), scheme[51])
	assert.Equal(t, byte('?'), scheme[52])
	assert.Equal(t, byte('?'), scheme[59])
}

func TestMeter(t *testing.T) {
	counter := prosody.NewCounter(phonetics.Starter())
	got := Meter("delight sun\n\nriver zzzq", counter)
	assert.Equal(t, [][]int{{0, 1, 1}, {1, 0, 1}}, got)
}

func TestMeter_UnknownWordsAlternate(t *testing.T) {
	got := Meter("beautiful", prosody.NewCounter(nil))
	assert.Equal(t, [][]int{{1, 0, 1}}, got)
}

func TestAlliteration(t *testing.T) {
	runs := Alliteration("Silver silent seas, a sleeping shore and the moon")
	assert.Equal(t, [][]string{{"Silver", "silent", "seas", "sleeping", "shore"}}, runs)

	assert.Empty(t, Alliteration("silver moon seas"))
	assert.Equal(t, [][]string{{"wild", "windy", "waves"}}, Alliteration("wild, windy waves!"))
}

func TestAssonanceAndConsonance(t *testing.T) {
	as := Assonance("Rain again, stain remains.")
	assert.Equal(t, []string{"rain", "stain"}, as["ai"])
	_, single := as["aai"]
	assert.False(t, single)

	cons := Consonance("stain stone soon")
	assert.Equal(t, []string{"stain", "stone"}, cons["stn"])
	_, single = cons["sn"]
	assert.False(t, single)
}

func TestImagery(t *testing.T) {
	counter := prosody.NewCounter(nil)
	cache := vocabulary.Build(vocabulary.Default(), counter)

	got := Imagery("The River holds its sorrow", cache)
	assert.Equal(t, []string{"river"}, got[domain.CategoryNature])
	assert.Equal(t, []string{"sorrow"}, got[domain.CategoryEmotion])
	assert.Empty(t, Imagery("river", nil))
}

func TestShape(t *testing.T) {
	s := Shape("sun and moon\n\n  delight  \n", prosody.NewCounter(phonetics.Starter()))
	assert.Equal(t, 2, s.Lines)
	assert.Equal(t, 4, s.Words)
	assert.Equal(t, []int{3, 2}, s.SyllablesPerLine)
}

func TestAnalyzer_Analyze(t *testing.T) {
	dict := phonetics.Starter()
	counter := prosody.NewCounter(dict)
	a := NewAnalyzer(counter, prosody.NewRhymeIndex(dict), vocabulary.Build(vocabulary.Default(), counter))

	r := a.Analyze("sun\nfun\nsky")
	assert.Equal(t, "AAB", r.RhymeScheme)
	assert.Len(t, r.Meter, 3)
	assert.Equal(t, 3, r.Structure.Lines)
	assert.Contains(t, r.Imagery[domain.CategoryNature], "sun")
}
