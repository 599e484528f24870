package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/compose"
	"github.com/alexanderramin/stanza/internal/domain"
)

// FormatPoemPlain is the bare poem, one line per row.
func FormatPoemPlain(resp *app.PoemResponse) string {
	return resp.Text() + "\n"
}

// FormatPoem renders a poem in a titled box with a rhyme letter and a
// syllable meter per line.
func FormatPoem(resp *app.PoemResponse) string {
	targets := lineTargets(resp.Form, len(resp.Lines))

	var b strings.Builder
	width := 0
	for _, line := range resp.Lines {
		width = max(width, len([]rune(line)))
	}
	for i, line := range resp.Lines {
		letter := " "
		if i < len(resp.RhymeScheme) {
			letter = RhymeLetter(resp.RhymeScheme[i])
		}
		pad := strings.Repeat(" ", width-len([]rune(line)))
		meter := ""
		if i < len(resp.Syllables) {
			meter = RenderSyllables(resp.Syllables[i], targets[i])
		}
		fmt.Fprintf(&b, "%s  %s%s  %s\n", letter, StyleVerse.Render(line), pad, meter)
	}

	b.WriteString("\n")
	mood := MoodBadge(resp.Mood)
	if resp.Mood != "" && !resp.MoodRecognized {
		mood += StyleYellow.Render("  (not in vocabulary)")
	}
	fmt.Fprintf(&b, "%s  %s  %s\n", mood, Dim("scheme "+resp.RhymeScheme), Dim(fmt.Sprintf("seed %d", resp.Seed)))

	return RenderBox(formTitle(resp.Form), b.String())
}

// lineTargets returns the intended syllable count per line. Free verse has
// no fixed targets, so its entries stay zero.
func lineTargets(kind domain.FormKind, n int) []int {
	out := make([]int, n)
	if form, ok := compose.Forms[kind]; ok {
		for i := range out {
			if i < len(form.Syllables) {
				out[i] = form.Syllables[i]
			}
		}
	}
	return out
}

func formTitle(kind domain.FormKind) string {
	if kind == domain.FormFreeVerse {
		return "free verse"
	}
	return string(kind)
}

// FormatLine renders a generated line with its meter.
func FormatLine(resp *app.LineResponse, target int, endWord string) string {
	var b strings.Builder
	b.WriteString(StyleVerse.Render(resp.Text))
	b.WriteString("\n")
	b.WriteString(RenderSyllables(resp.Syllables, target))
	if endWord != "" && !resp.EndWordApplied {
		b.WriteString("  " + StyleYellow.Render(fmt.Sprintf("end word %q did not fit", endWord)))
	}
	b.WriteString("  " + Dim(fmt.Sprintf("seed %d", resp.Seed)))
	b.WriteString("\n")
	return b.String()
}
