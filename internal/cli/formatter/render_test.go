package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/stanza/internal/analysis"
	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"CATEGORY", "WORDS"},
		[][]string{{"nature", "12"}, {"abstract"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "CATEGORY  WORDS", lines[0])
	assert.Equal(t, "────────  ─────", lines[1])
	assert.Equal(t, "nature    12", lines[2])
	assert.Equal(t, "abstract  ", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderSyllables(t *testing.T) {
	assert.Equal(t, "█████░░ 5/7", stripANSI(RenderSyllables(5, 7)))
	assert.Equal(t, "█████ 5/5", stripANSI(RenderSyllables(5, 5)))
	assert.Equal(t, "███ 4/3", stripANSI(RenderSyllables(4, 3)))
	assert.Equal(t, "9", RenderSyllables(9, 0))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Feb 20, 2026", HumanTimestampFrom(now.AddDate(0, 0, -9), now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "/home/us…", Truncate("/home/user/words.yaml", 9))
	assert.Equal(t, "…", Truncate("abc", 1))
}

func TestRhymeLetter_SameLetterSameColor(t *testing.T) {
	assert.Equal(t, RhymeLetter('A'), RhymeLetter('A'))
	assert.Equal(t, "C", stripANSI(RhymeLetter('C')))
}

func TestFormatPoem(t *testing.T) {
	resp := &app.PoemResponse{
		Seed:        42,
		Form:        domain.FormHaiku,
		Mood:        "weather",
		Lines:       []string{"sun on the river", "quiet moss beneath the stone", "the heron is gone"},
		RhymeScheme: "ABC",
		Syllables:   []int{5, 7, 5},
	}

	out := stripANSI(FormatPoem(resp))
	assert.Contains(t, out, "HAIKU")
	assert.Contains(t, out, "A  sun on the river")
	assert.Contains(t, out, "7/7")
	assert.Contains(t, out, "● weather")
	assert.Contains(t, out, "not in vocabulary")
	assert.Contains(t, out, "seed 42")

	assert.Equal(t, "sun on the river\nquiet moss beneath the stone\nthe heron is gone\n", FormatPoemPlain(resp))
}

func TestFormatPoem_FreeVerseHasNoTargets(t *testing.T) {
	out := stripANSI(FormatPoem(&app.PoemResponse{
		Form:           domain.FormFreeVerse,
		MoodRecognized: true,
		Lines:          []string{"a b c"},
		RhymeScheme:    "A",
		Syllables:      []int{3},
	}))
	assert.Contains(t, out, "FREE VERSE")
	assert.Contains(t, out, "● any mood")
	assert.NotContains(t, out, "3/")
}

func TestFormatLine(t *testing.T) {
	out := stripANSI(FormatLine(&app.LineResponse{Text: "moss and stone", Syllables: 3, Seed: 7}, 4, "night"))
	assert.Contains(t, out, "moss and stone\n")
	assert.Contains(t, out, "3/4")
	assert.Contains(t, out, `end word "night" did not fit`)

	out = stripANSI(FormatLine(&app.LineResponse{Text: "moss night", Syllables: 2, EndWordApplied: true}, 2, "night"))
	assert.NotContains(t, out, "did not fit")
}

func TestFormatAnalysis(t *testing.T) {
	out := stripANSI(FormatAnalysis(analysis.Report{
		RhymeScheme:  "AAB",
		Meter:        [][]int{{1}, {0, 1}, {1, 2}},
		Alliteration: [][]string{{"silver", "sun", "sings"}},
		Assonance:    map[string][]string{"ai": {"rain", "stain"}},
		Imagery:      map[domain.Category][]string{domain.CategoryNature: {"sun", "rain"}},
		Structure:    analysis.Structure{Lines: 3, Words: 6, SyllablesPerLine: []int{1, 2, 2}},
	}))

	assert.Contains(t, out, "Lines: 3   Words: 6")
	assert.Contains(t, out, "Syllables: 1 / 2 / 2")
	assert.Contains(t, out, "AAB")
	assert.Contains(t, out, " 2  x /")
	assert.Contains(t, out, ` 3  / \`)
	assert.Contains(t, out, "silver sun sings")
	assert.Contains(t, out, "ai  rain, stain")
	assert.Contains(t, out, "CONSONANCE")
	assert.Contains(t, out, "● nature sun, rain")
}

func TestFormatStats(t *testing.T) {
	stats := &app.LexiconStats{
		Vocabulary: []domain.CategoryCount{
			{Category: domain.CategoryNature, Words: 5},
			{Category: domain.CategoryEmotion, Words: 3},
		},
		VocabularyOrigin: app.OriginDatabase,
		DictionaryOrigin: app.OriginBuiltin,
		RecentImports: []*domain.LexiconImport{{
			Kind: domain.LexiconVocabulary, Source: "built-in", Entries: 8, ImportedAt: time.Now(),
		}},
	}

	out := stripANSI(FormatStats(stats))
	assert.Contains(t, out, "Vocabulary in use: database")
	assert.Contains(t, out, "Dictionary in use: built-in")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "8")
	assert.Contains(t, out, "import-dict")
	assert.Contains(t, out, "Just now")
}

func TestFormatImport(t *testing.T) {
	out := stripANSI(FormatImport(&domain.LexiconImport{Kind: domain.LexiconDictionary, Source: "cmudict", Entries: 3}))
	assert.Equal(t, "✔ Imported 3 pronounced words from cmudict\n", out)
}
