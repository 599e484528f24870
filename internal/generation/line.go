package generation

import (
	"strings"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/vocabulary"
)

// Generator builds lines from a vocabulary cache.
//
// A Generator is not safe for concurrent use; the random source is shared
// by every step.
type Generator struct {
	cache    *vocabulary.Cache
	counter  SyllableCounter
	rng      Rand
	policy   Policy
	observer Observer
	phrases  *PhraseBuilder
}

// NewGenerator returns a Generator over cache. A nil cache behaves like an
// empty vocabulary.
func NewGenerator(cache *vocabulary.Cache, counter SyllableCounter, opts ...Option) *Generator {
	if cache == nil {
		cache = vocabulary.Build(nil, counter)
	}
	g := &Generator{
		cache:    cache,
		counter:  counter,
		policy:   DefaultPolicy(),
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRand(0)
	}
	g.phrases = NewPhraseBuilder(g.cache, g.counter, g.rng, g.policy.PhraseRetries)
	return g
}

// Cache returns the vocabulary cache lines are drawn from.
func (g *Generator) Cache() *vocabulary.Cache { return g.cache }

// Policy returns the active generation policy.
func (g *Generator) Policy() Policy { return g.policy }

// GenerateLine returns a non-empty line for spec. For targets of three or
// more syllables the line never counts over the target; smaller targets get
// a single word or FillerShort. A forced end word replaces the last word
// only when the result still fits.
func (g *Generator) GenerateLine(spec domain.LineSpec) string {
	line := g.compose(spec)
	if end := strings.TrimSpace(spec.EndWord); end != "" {
		line = g.applyEndWord(line, end, spec.Syllables)
	}
	return line
}

func (g *Generator) compose(spec domain.LineSpec) string {
	target := spec.Syllables
	mood := g.resolveMood(spec.Mood, target)

	if target < 3 {
		return g.degenerate(target, mood)
	}

	if g.wantMetaphor(spec.Style) {
		if text, ok := g.validate(StepMetaphor, target, g.metaphor(mood)); ok {
			return text
		}
	}

	if g.wantImage(spec.Style) {
		o := g.phrases.Build(target, mood)
		if !o.OK() {
			g.observe(StepEvent{Step: StepImage, Target: target, Reason: o.Reason})
			o = accept(g.phrases.Simple(target, mood))
			if text, ok := g.validate(StepSimple, target, o); ok {
				return text
			}
		} else if text, ok := g.validate(StepImage, target, o); ok {
			return text
		}
	}

	return g.accrete(target, mood)
}

// resolveMood maps an unknown mood to none.
func (g *Generator) resolveMood(mood domain.Category, target int) domain.Category {
	if mood == "" {
		return ""
	}
	if !g.cache.Has(mood) {
		g.observe(StepEvent{Step: StepMood, Target: target, Reason: ReasonUnknownMood, Text: string(mood)})
		return ""
	}
	return mood
}

func (g *Generator) degenerate(target int, mood domain.Category) string {
	var candidates []string
	if mood != "" {
		candidates = g.cache.LookupUpTo(mood, target)
	} else {
		for _, c := range g.cache.Categories() {
			candidates = append(candidates, g.cache.LookupUpTo(c, target)...)
		}
	}
	word, ok := g.pick(candidates)
	if !ok {
		g.observe(StepEvent{Step: StepDegenerate, Target: target, Reason: ReasonNoCandidates})
		return FillerShort
	}
	g.observe(StepEvent{Step: StepDegenerate, Target: target, Accepted: true, Text: word})
	return word
}

func (g *Generator) wantMetaphor(style domain.LineStyle) bool {
	switch style {
	case domain.StyleMetaphor:
		return g.rng.Float64() < g.policy.MetaphorChance
	case domain.StyleUnspecified:
		return g.rng.Float64() < g.policy.UnspecifiedMetaphorChance
	default:
		return false
	}
}

func (g *Generator) wantImage(style domain.LineStyle) bool {
	if style == domain.StyleImage {
		return true
	}
	return g.rng.Float64() < g.policy.ImageChance
}

// validate re-counts a successful outcome against target.
func (g *Generator) validate(step Step, target int, o Outcome) (string, bool) {
	if !o.OK() {
		g.observe(StepEvent{Step: step, Target: target, Reason: o.Reason})
		return "", false
	}
	if g.counter.CountPhrase(o.Text) > target {
		g.observe(StepEvent{Step: step, Target: target, Reason: ReasonOverBudget, Text: o.Text})
		return "", false
	}
	g.observe(StepEvent{Step: step, Target: target, Accepted: true, Text: o.Text})
	return o.Text, true
}

// accrete appends random words until the target is met or no candidate
// fits the remaining budget. Categories are weighted toward the mood.
func (g *Generator) accrete(target int, mood domain.Category) string {
	cats := g.cache.Categories()
	if len(cats) == 0 {
		g.observe(StepEvent{Step: StepStandard, Target: target, Reason: ReasonNoCandidates, Text: FillerEmpty})
		return FillerEmpty
	}

	primary, weight := mood, g.policy.MoodWeight
	if primary == "" {
		primary, weight = cats[g.rng.Intn(len(cats))], 1
	}
	others := without(cats, primary)

	var words []string
	current := 0
	for current < target {
		cat := primary
		if r := g.rng.Intn(weight + len(others)); r >= weight {
			cat = others[r-weight]
		}
		word, ok := g.pick(g.cache.LookupUpTo(cat, target-current))
		if !ok {
			if len(words) == 0 {
				g.observe(StepEvent{Step: StepStandard, Target: target, Reason: ReasonNoCandidates, Text: FillerLine})
				return FillerLine
			}
			break
		}
		words = append(words, word)
		current += syllablesOf(g.cache, g.counter, word)
	}

	line := strings.Join(words, " ")
	g.observe(StepEvent{Step: StepStandard, Target: target, Accepted: true, Text: line})
	return line
}

// applyEndWord swaps the last word of line for end when the line still
// fits target afterwards.
func (g *Generator) applyEndWord(line, end string, target int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}
	head := words[:len(words)-1]
	total := g.counter.Count(end)
	if len(head) > 0 {
		total += g.counter.CountPhrase(strings.Join(head, " "))
	}
	if total > target {
		g.observe(StepEvent{Step: StepEndWord, Target: target, Reason: ReasonOverBudget, Text: end})
		return line
	}
	words[len(words)-1] = end
	g.observe(StepEvent{Step: StepEndWord, Target: target, Accepted: true, Text: end})
	return strings.Join(words, " ")
}

func (g *Generator) pick(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[g.rng.Intn(len(candidates))], true
}
