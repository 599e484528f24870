package generation

import "strings"

const slot = "{}"

// phraseTemplate is a short pattern of literal words and "{}" slots.
type phraseTemplate struct {
	pattern string
	slots   int
	literal string
}

func newTemplate(pattern string) phraseTemplate {
	literal := strings.Fields(strings.ReplaceAll(pattern, slot, " "))
	return phraseTemplate{
		pattern: pattern,
		slots:   strings.Count(pattern, slot),
		literal: strings.Join(literal, " "),
	}
}

func newTemplates(patterns ...string) []phraseTemplate {
	out := make([]phraseTemplate, len(patterns))
	for i, p := range patterns {
		out[i] = newTemplate(p)
	}
	return out
}

// fill substitutes words into the slots in order. Missing words leave the
// slot text in place, so callers must pass exactly t.slots words.
func (t phraseTemplate) fill(words []string) string {
	out := t.pattern
	for _, w := range words {
		out = strings.Replace(out, slot, w, 1)
	}
	return out
}

var (
	metaphorTemplates = newTemplates(
		"like {} in {}",
		"{} of {}",
		"{} beneath {}",
		"{} among {}",
		"through {} like {}",
		"{} within {}",
	)

	// simpleTemplates serve budgets under complexThreshold.
	simpleTemplates = newTemplates(
		"{} {}",
		"{} in {}",
		"{} like {}",
		"{} through {}",
	)

	complexTemplates = newTemplates(
		"{} {} in the {}",
		"{} like {} {}",
		"{} through the {}",
		"where {} meets {}",
		"{} of {} {}",
	)
)

const complexThreshold = 6
