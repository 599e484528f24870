// Package generation builds single lines of poetry under a syllable budget,
// an optional mood and an optional end word, falling back through simpler
// strategies until something fits.
package generation

import (
	"math/rand"
	"time"
)

// Rand is the random source used for every choice the generator makes.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded *rand.Rand. A zero seed draws one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SyllableCounter counts syllables of words and whitespace-separated phrases.
type SyllableCounter interface {
	Count(word string) int
	CountPhrase(text string) int
}

// Fallback fillers returned when no strategy can produce anything better.
const (
	FillerShort = "oh"            // budgets under three syllables
	FillerWord  = "gentle"        // simple phrase with nothing to pick from
	FillerLine  = "gentle wind"   // standard accretion found no first word
	FillerEmpty = "gentle breeze" // the vocabulary has no categories at all
)

// Policy holds the tunable knobs of line generation.
type Policy struct {
	// PhraseRetries bounds the attempts to fill one phrase slot.
	PhraseRetries int
	// MetaphorChance is the probability of trying a metaphor when the
	// metaphor style is requested.
	MetaphorChance float64
	// UnspecifiedMetaphorChance is the probability of trying a metaphor
	// when no style is requested.
	UnspecifiedMetaphorChance float64
	// ImageChance is the probability of trying an image phrase for lines
	// that did not ask for the image style.
	ImageChance float64
	// MoodWeight is the weight of the mood category against weight 1 for
	// every other category during standard accretion.
	MoodWeight int
}

// DefaultPolicy returns the stock generation policy.
func DefaultPolicy() Policy {
	return Policy{
		PhraseRetries:             10,
		MetaphorChance:            0.7,
		UnspecifiedMetaphorChance: 0.15,
		ImageChance:               0.3,
		MoodWeight:                2,
	}
}

func (p Policy) normalized() Policy {
	if p.PhraseRetries < 1 {
		p.PhraseRetries = 1
	}
	if p.MoodWeight < 1 {
		p.MoodWeight = 1
	}
	return p
}
