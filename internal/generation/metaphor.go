package generation

import "github.com/alexanderramin/stanza/internal/domain"

// metaphorWordSyllables caps the size of each word in a metaphor.
const metaphorWordSyllables = 2

// metaphor joins a word from mood (or a random category) with a word from
// a different category through a two-slot template.
func (g *Generator) metaphor(mood domain.Category) Outcome {
	cats := g.cache.Categories()
	if len(cats) < 2 {
		return abandon(ReasonTooFewCategories)
	}

	var primary, secondary domain.Category
	if mood != "" {
		primary = mood
		others := without(cats, mood)
		secondary = others[g.rng.Intn(len(others))]
	} else {
		i := g.rng.Intn(len(cats))
		j := g.rng.Intn(len(cats) - 1)
		if j >= i {
			j++
		}
		primary, secondary = cats[i], cats[j]
	}

	first, ok := g.pick(g.cache.LookupUpTo(primary, metaphorWordSyllables))
	if !ok {
		return abandon(ReasonNoCandidates)
	}
	second, ok := g.pick(g.cache.LookupUpTo(secondary, metaphorWordSyllables))
	if !ok {
		return abandon(ReasonNoCandidates)
	}

	tmpl := metaphorTemplates[g.rng.Intn(len(metaphorTemplates))]
	return accept(tmpl.fill([]string{first, second}))
}

func without(cats []domain.Category, drop domain.Category) []domain.Category {
	out := make([]domain.Category, 0, len(cats))
	for _, c := range cats {
		if c != drop {
			out = append(out, c)
		}
	}
	return out
}
