package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/stanza/internal/analysis"
	"github.com/alexanderramin/stanza/internal/domain"
)

// FormatAnalysis renders every section of a report. Empty sections are
// listed as "none".
func FormatAnalysis(r analysis.Report) string {
	var b strings.Builder

	b.WriteString(Header("Structure") + "\n")
	fmt.Fprintf(&b, "  Lines: %d   Words: %d\n", r.Structure.Lines, r.Structure.Words)
	fmt.Fprintf(&b, "  Syllables: %s\n\n", joinInts(r.Structure.SyllablesPerLine, " / "))

	b.WriteString(Header("Rhyme scheme") + "\n  ")
	for i := 0; i < len(r.RhymeScheme); i++ {
		b.WriteString(RhymeLetter(r.RhymeScheme[i]))
	}
	b.WriteString("\n\n")

	b.WriteString(Header("Meter") + "\n")
	for i, stresses := range r.Meter {
		fmt.Fprintf(&b, "  %2d  %s\n", i+1, meterMarks(stresses))
	}
	b.WriteString("\n")

	b.WriteString(Header("Alliteration") + "\n")
	if len(r.Alliteration) == 0 {
		b.WriteString("  " + Dim("none") + "\n")
	}
	for _, run := range r.Alliteration {
		b.WriteString("  " + strings.Join(run, " ") + "\n")
	}
	b.WriteString("\n")

	writeGroups(&b, "Assonance", r.Assonance)
	writeGroups(&b, "Consonance", r.Consonance)

	b.WriteString(Header("Imagery") + "\n")
	if len(r.Imagery) == 0 {
		b.WriteString("  " + Dim("none") + "\n")
	}
	cats := make([]domain.Category, 0, len(r.Imagery))
	for c := range r.Imagery {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, c := range cats {
		fmt.Fprintf(&b, "  %s %s\n", MoodBadge(c), strings.Join(r.Imagery[c], ", "))
	}

	return RenderBox("Analysis", strings.TrimRight(b.String(), "\n"))
}

// meterMarks shows primary stress as "/", secondary as "\" and unstressed
// syllables as "x".
func meterMarks(stresses []int) string {
	marks := make([]string, len(stresses))
	for i, s := range stresses {
		switch s {
		case 1:
			marks[i] = StyleHeader.Render("/")
		case 2:
			marks[i] = StyleFg.Render(`\`)
		default:
			marks[i] = Dim("x")
		}
	}
	return strings.Join(marks, " ")
}

func writeGroups(b *strings.Builder, title string, groups map[string][]string) {
	b.WriteString(Header(title) + "\n")
	if len(groups) == 0 {
		b.WriteString("  " + Dim("none") + "\n\n")
		return
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "  %s  %s\n", StyleBlue.Render(k), strings.Join(groups[k], ", "))
	}
	b.WriteString("\n")
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, sep)
}
