// Package compose assembles whole poems line by line from a line generator,
// handling per-form syllable structure, styles, moods and rhyme bookkeeping.
package compose

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/generation"
	"github.com/alexanderramin/stanza/internal/prosody"
)

// LineGenerator produces one line for a spec.
type LineGenerator interface {
	GenerateLine(spec domain.LineSpec) string
}

// RhymeIndex lists rhymes of a word.
type RhymeIndex interface {
	RhymesOf(word string) []string
}

// Poem is a composed poem.
type Poem struct {
	Kind  domain.FormKind
	Mood  domain.Category
	Lines []string
}

// Text joins the lines with newlines.
func (p Poem) Text() string { return strings.Join(p.Lines, "\n") }

// Composer builds poems. Like generation.Generator it is not safe for
// concurrent use.
type Composer struct {
	lines     LineGenerator
	rhymes    RhymeIndex
	rng       generation.Rand
	freeVerse domain.FreeVerseRange
}

// Option customizes a Composer.
type Option func(*Composer)

// WithRand sets the random source used for free verse and rhyme picks.
func WithRand(r generation.Rand) Option {
	return func(c *Composer) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithFreeVerseRange replaces the default free verse bounds.
func WithFreeVerseRange(r domain.FreeVerseRange) Option {
	return func(c *Composer) {
		c.freeVerse = r
	}
}

// NewComposer returns a Composer. rhymes may be nil, in which case rhymed
// forms are composed without end word constraints.
func NewComposer(lines LineGenerator, rhymes RhymeIndex, opts ...Option) *Composer {
	c := &Composer{
		lines:     lines,
		rhymes:    rhymes,
		freeVerse: domain.DefaultFreeVerseRange(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = generation.NewRand(0)
	}
	return c
}

// Haiku composes a 5/7/5 haiku.
func (c *Composer) Haiku(mood domain.Category) string {
	return strings.Join(c.fixed(HaikuForm, mood), "\n")
}

// Tanka composes a 5/7/5/7/7 tanka.
func (c *Composer) Tanka(mood domain.Category) string {
	return strings.Join(c.fixed(TankaForm, mood), "\n")
}

// Sonnet composes a fourteen line sonnet rhymed ABABCDCDEFEFGG on a best
// effort basis.
func (c *Composer) Sonnet(mood domain.Category) string {
	return strings.Join(c.fixed(SonnetForm, mood), "\n")
}

// FreeVerse composes n lines of free verse, or a random count within the
// configured range when n <= 0.
func (c *Composer) FreeVerse(n int, mood domain.Category) string {
	return strings.Join(c.freeVerseLines(n, mood), "\n")
}

// Compose builds a poem of the given kind. lines only applies to free verse.
func (c *Composer) Compose(kind domain.FormKind, mood domain.Category, lines int) (Poem, error) {
	p := Poem{Kind: kind, Mood: mood}
	if kind == domain.FormFreeVerse {
		p.Lines = c.freeVerseLines(lines, mood)
		return p, nil
	}
	form, ok := Forms[kind]
	if !ok {
		return Poem{}, fmt.Errorf("unknown poem form %q", kind)
	}
	p.Lines = c.fixed(form, mood)
	return p, nil
}

// fixed composes a form with a fixed template. For rhymed forms, the first
// line of a rhyme letter that yields rhymes seeds the candidates for that
// letter; later lines of the letter force a random candidate as end word.
func (c *Composer) fixed(form domain.PoemForm, mood domain.Category) []string {
	rhymeWords := make(map[byte][]string)
	out := make([]string, 0, form.Lines())

	for i, n := range form.Syllables {
		spec := domain.LineSpec{Syllables: n, Mood: mood}
		if spec.Mood == "" && len(form.Focus) > 0 {
			spec.Mood = form.Focus[i%len(form.Focus)]
		}
		if i < len(form.Styles) {
			spec.Style = form.Styles[i]
		}

		rhymed := i < len(form.RhymeScheme)
		var letter byte
		if rhymed {
			letter = form.RhymeScheme[i]
			if candidates := rhymeWords[letter]; len(candidates) > 0 {
				spec.EndWord = candidates[c.rng.Intn(len(candidates))]
				out = append(out, c.lines.GenerateLine(spec))
				continue
			}
		}

		line := c.lines.GenerateLine(spec)
		out = append(out, line)

		if rhymed && c.rhymes != nil {
			if last := lastWord(line); last != "" {
				rhymeWords[letter] = append(rhymeWords[letter], c.rhymes.RhymesOf(last)...)
			}
		}
	}
	return out
}

func (c *Composer) freeVerseLines(n int, mood domain.Category) []string {
	r := c.freeVerse
	if n <= 0 {
		n = c.between(r.MinLines, r.MaxLines)
	}

	out := make([]string, 0, n)
	target := 0
	for i := 0; i < n; i++ {
		if i == 0 {
			target = c.between(r.MinSyllables, r.MaxSyllables)
		} else {
			target = clamp(target+c.between(-r.MaxDelta, r.MaxDelta), r.MinSyllables, r.MaxSyllables)
		}
		out = append(out, c.lines.GenerateLine(domain.LineSpec{
			Syllables: target,
			Mood:      mood,
			Style:     freeVerseStyles[i%len(freeVerseStyles)],
		}))
	}
	return out
}

// between returns a uniform integer in [lo, hi].
func (c *Composer) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + c.rng.Intn(hi-lo+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lastWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return prosody.CleanWord(fields[len(fields)-1])
}
