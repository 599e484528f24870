package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/domain"
)

// FormatStats renders the stored lexicon counts, the origins in use and the
// most recent imports.
func FormatStats(s *app.LexiconStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  Vocabulary in use: %s\n", originLabel(s.VocabularyOrigin))
	fmt.Fprintf(&b, "  Dictionary in use: %s\n\n", originLabel(s.DictionaryOrigin))

	b.WriteString(Header("Stored vocabulary") + "\n")
	if len(s.Vocabulary) == 0 {
		b.WriteString("  " + Dim("empty; run `stanza lexicon import-vocab`") + "\n")
	} else {
		rows := make([][]string, 0, len(s.Vocabulary)+1)
		for _, c := range s.Vocabulary {
			rows = append(rows, []string{MoodBadge(c.Category), fmt.Sprint(c.Words)})
		}
		rows = append(rows, []string{Bold("total"), Bold(fmt.Sprint(s.TotalWords()))})
		b.WriteString(indent(RenderTable([]string{"CATEGORY", "WORDS"}, rows)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Stored dictionary") + "\n")
	if s.Pronunciations == 0 {
		b.WriteString("  " + Dim("empty; run `stanza lexicon import-dict`") + "\n")
	} else {
		fmt.Fprintf(&b, "  %d words\n", s.Pronunciations)
	}

	if len(s.RecentImports) > 0 {
		b.WriteString("\n" + Header("Recent imports") + "\n")
		rows := make([][]string, 0, len(s.RecentImports))
		for _, imp := range s.RecentImports {
			rows = append(rows, []string{
				string(imp.Kind),
				Truncate(imp.Source, 40),
				fmt.Sprint(imp.Entries),
				Dim(HumanTimestamp(imp.ImportedAt)),
			})
		}
		b.WriteString(indent(RenderTable([]string{"KIND", "SOURCE", "ENTRIES", "WHEN"}, rows)))
	}

	return RenderBox("Lexicon", strings.TrimRight(b.String(), "\n"))
}

// FormatImport is the one-line confirmation after an import.
func FormatImport(imp *domain.LexiconImport) string {
	noun := "words"
	if imp.Kind == domain.LexiconDictionary {
		noun = "pronounced words"
	}
	return fmt.Sprintf("%s Imported %d %s from %s\n", StyleGreen.Render("✔"), imp.Entries, noun, Bold(imp.Source))
}

func originLabel(o app.Origin) string {
	switch o {
	case app.OriginFile:
		return StyleBlue.Render(string(o))
	case app.OriginDatabase:
		return StyleGreen.Render(string(o))
	default:
		return Dim(string(o))
	}
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
