package generation

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/phonetics"
	"github.com/alexanderramin/stanza/internal/prosody"
	"github.com/alexanderramin/stanza/internal/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []StepEvent
}

func (o *recordingObserver) OnStep(e StepEvent) { o.events = append(o.events, e) }

func (o *recordingObserver) has(step Step, reason Reason) bool {
	for _, e := range o.events {
		if e.Step == step && e.Reason == reason {
			return true
		}
	}
	return false
}

// standardOnly disables the metaphor and image steps.
func standardOnly() Policy {
	p := DefaultPolicy()
	p.MetaphorChance = 0
	p.UnspecifiedMetaphorChance = 0
	p.ImageChance = 0
	return p
}

func defaultGenerator(t *testing.T, opts ...Option) (*Generator, *prosody.Counter) {
	t.Helper()
	counter := prosody.NewCounter(nil)
	cache := vocabulary.Build(vocabulary.Default(), counter)
	require.NotZero(t, cache.Size())
	return NewGenerator(cache, counter, opts...), counter
}

func TestGenerateLine_NeverExceedsTarget(t *testing.T) {
	gen, counter := defaultGenerator(t, WithSeed(42))
	rng := rand.New(rand.NewSource(42))

	styles := []domain.LineStyle{
		domain.StyleUnspecified, domain.StyleStandard, domain.StyleMetaphor, domain.StyleImage,
	}
	moods := append([]domain.Category{"", "weather"}, domain.BuiltinCategories...)

	for trial := 0; trial < 1000; trial++ {
		spec := domain.LineSpec{
			Syllables: 3 + rng.Intn(12),
			Mood:      moods[rng.Intn(len(moods))],
			Style:     styles[rng.Intn(len(styles))],
		}
		line := gen.GenerateLine(spec)
		require.NotEmpty(t, line, "trial %d", trial)
		assert.LessOrEqual(t, counter.CountPhrase(line), spec.Syllables,
			"trial %d: %q for %+v", trial, line, spec)
	}
}

func TestGenerateLine_SmallTargetsAreOneWord(t *testing.T) {
	gen, counter := defaultGenerator(t, WithSeed(7))

	for _, target := range []int{1, 2} {
		for _, mood := range []domain.Category{"", domain.CategoryNature, "weather"} {
			for i := 0; i < 50; i++ {
				line := gen.GenerateLine(domain.LineSpec{Syllables: target, Mood: mood})
				assert.Len(t, strings.Fields(line), 1, "target %d mood %q: %q", target, mood, line)
				assert.LessOrEqual(t, counter.CountPhrase(line), target)
			}
		}
	}
}

func TestGenerateLine_NonPositiveTargetIsFiller(t *testing.T) {
	gen, _ := defaultGenerator(t, WithSeed(1))
	assert.Equal(t, FillerShort, gen.GenerateLine(domain.LineSpec{Syllables: 0}))
	assert.Equal(t, FillerShort, gen.GenerateLine(domain.LineSpec{Syllables: -3}))
}

func TestGenerateLine_EmptyVocabulary(t *testing.T) {
	counter := prosody.NewCounter(nil)
	empty := vocabulary.Build(vocabulary.NewSource(), counter)

	gen := NewGenerator(empty, counter, WithSeed(3))
	styles := []domain.LineStyle{
		domain.StyleUnspecified, domain.StyleStandard, domain.StyleMetaphor, domain.StyleImage,
	}
	for _, style := range styles {
		for target := 0; target <= 12; target++ {
			line := gen.GenerateLine(domain.LineSpec{Syllables: target, Style: style, Mood: domain.CategoryNature})
			assert.NotEmpty(t, line)
		}
	}

	standard := NewGenerator(empty, counter, WithSeed(3), WithPolicy(standardOnly()))
	assert.Equal(t, FillerEmpty, standard.GenerateLine(domain.LineSpec{Syllables: 7}))
	assert.Equal(t, FillerShort, standard.GenerateLine(domain.LineSpec{Syllables: 2}))
}

func TestGenerateLine_NilCache(t *testing.T) {
	gen := NewGenerator(nil, prosody.NewCounter(nil), WithSeed(3), WithPolicy(standardOnly()))
	assert.Equal(t, FillerEmpty, gen.GenerateLine(domain.LineSpec{Syllables: 5}))
}

func TestGenerateLine_FirstPickEmptyUsesLineFiller(t *testing.T) {
	counter := prosody.NewCounter(nil)
	src := vocabulary.NewSource()
	src.Add(domain.CategoryNature, "aurora") // three syllables
	cache := vocabulary.Build(src, counter)

	gen := NewGenerator(cache, counter, WithSeed(3), WithPolicy(standardOnly()))
	assert.Equal(t, "aurora", gen.GenerateLine(domain.LineSpec{Syllables: 3}))
	// Only "aurora" exists, and it does not fit a four syllable line twice.
	assert.Equal(t, "aurora", gen.GenerateLine(domain.LineSpec{Syllables: 4}))

	src2 := vocabulary.NewSource()
	src2.Add(domain.CategoryNature, "melancholy") // four syllables
	gen = NewGenerator(vocabulary.Build(src2, counter), counter, WithSeed(3), WithPolicy(standardOnly()))
	assert.Equal(t, FillerLine, gen.GenerateLine(domain.LineSpec{Syllables: 3}))
}

func onesCache(counter *prosody.Counter) *vocabulary.Cache {
	src := vocabulary.NewSource()
	src.Add(domain.CategoryNature, "sun", "moon", "sea")
	return vocabulary.Build(src, counter)
}

func TestGenerateLine_EndWordOverride(t *testing.T) {
	counter := prosody.NewCounter(nil)
	obs := &recordingObserver{}
	gen := NewGenerator(onesCache(counter), counter, WithSeed(5), WithPolicy(standardOnly()), WithObserver(obs))

	line := gen.GenerateLine(domain.LineSpec{Syllables: 3, EndWord: "light", Style: domain.StyleStandard})
	words := strings.Fields(line)
	require.Len(t, words, 3)
	assert.Equal(t, "light", words[2])
	assert.True(t, obs.has(StepEndWord, ReasonNone))
}

func TestGenerateLine_EndWordIgnoredWhenTooLong(t *testing.T) {
	counter := prosody.NewCounter(nil)
	obs := &recordingObserver{}
	gen := NewGenerator(onesCache(counter), counter, WithSeed(5), WithPolicy(standardOnly()), WithObserver(obs))

	line := gen.GenerateLine(domain.LineSpec{Syllables: 3, EndWord: "eternity"})
	words := strings.Fields(line)
	require.Len(t, words, 3)
	assert.NotEqual(t, "eternity", words[2])
	assert.True(t, obs.has(StepEndWord, ReasonOverBudget))
}

func TestGenerateLine_EndWordOnDegenerateLine(t *testing.T) {
	counter := prosody.NewCounter(nil)
	gen := NewGenerator(onesCache(counter), counter, WithSeed(5))
	assert.Equal(t, "light", gen.GenerateLine(domain.LineSpec{Syllables: 1, EndWord: "light"}))
}

func TestGenerateLine_UnknownMoodIsIgnored(t *testing.T) {
	counter := prosody.NewCounter(nil)
	obs := &recordingObserver{}
	gen := NewGenerator(onesCache(counter), counter, WithSeed(5), WithPolicy(standardOnly()), WithObserver(obs))

	line := gen.GenerateLine(domain.LineSpec{Syllables: 4, Mood: "weather"})
	assert.Len(t, strings.Fields(line), 4)
	assert.True(t, obs.has(StepMood, ReasonUnknownMood))
}

func TestGenerateLine_MoodWeighting(t *testing.T) {
	counter := prosody.NewCounter(nil)
	src := vocabulary.NewSource()
	src.Add(domain.CategoryNature, "sun", "moon")
	src.Add(domain.CategoryEmotion, "joy", "grief")
	cache := vocabulary.Build(src, counter)

	p := standardOnly()
	p.MoodWeight = 50
	gen := NewGenerator(cache, counter, WithSeed(11), WithPolicy(p))

	nature := 0
	total := 0
	for i := 0; i < 100; i++ {
		for _, w := range strings.Fields(gen.GenerateLine(domain.LineSpec{Syllables: 5, Mood: domain.CategoryNature})) {
			total++
			if cache.Contains(domain.CategoryNature, w) {
				nature++
			}
		}
	}
	assert.Greater(t, float64(nature)/float64(total), 0.9)
}

func TestGenerateLine_SeedIsReproducible(t *testing.T) {
	a, _ := defaultGenerator(t, WithSeed(99))
	b, _ := defaultGenerator(t, WithSeed(99))

	for i := 0; i < 50; i++ {
		spec := domain.LineSpec{Syllables: 3 + i%9, Style: domain.StyleUnspecified}
		assert.Equal(t, a.GenerateLine(spec), b.GenerateLine(spec))
	}
}

func TestNewGenerator_OptionsPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithObserver(nil) })
}

func TestWithPolicy_Normalizes(t *testing.T) {
	gen := NewGenerator(nil, prosody.NewCounter(nil), WithPolicy(Policy{}))
	assert.Equal(t, 1, gen.Policy().PhraseRetries)
	assert.Equal(t, 1, gen.Policy().MoodWeight)
}

func TestGenerateLine_ReportsFallThroughsToObserver(t *testing.T) {
	counter := prosody.NewCounter(nil)
	empty := vocabulary.Build(vocabulary.NewSource(), counter)
	obs := &recordingObserver{}
	gen := NewGenerator(empty, counter, WithSeed(5), WithPolicy(standardOnly()), WithObserver(obs))

	assert.Equal(t, FillerShort, gen.GenerateLine(domain.LineSpec{Syllables: 2}))
	assert.True(t, obs.has(StepDegenerate, ReasonNoCandidates))

	assert.Equal(t, FillerEmpty, gen.GenerateLine(domain.LineSpec{Syllables: 6}))
	assert.True(t, obs.has(StepStandard, ReasonNoCandidates))
}

func TestGenerateLine_MultiWordEntriesStayWithinTarget(t *testing.T) {
	dict, err := phonetics.Load(strings.NewReader("THE DH AH0\nFIRE F AY1 ER0\nSUN S AH1 N\n"))
	require.NoError(t, err)
	counter := prosody.NewCounter(dict)

	src := vocabulary.NewSource()
	src.Add(domain.CategoryNature, "the fire", "sun")
	cache := vocabulary.Build(src, counter)
	assert.Equal(t, []string{"the", "sun"}, cache.Lookup(domain.CategoryNature, 1))
	assert.Equal(t, []string{"fire"}, cache.Lookup(domain.CategoryNature, 2))

	gen := NewGenerator(cache, counter, WithSeed(11), WithPolicy(standardOnly()))
	for i := 0; i < 200; i++ {
		line := gen.GenerateLine(domain.LineSpec{Syllables: 3})
		assert.LessOrEqual(t, counter.CountPhrase(line), 3, "line %d: %q", i, line)
	}
}
