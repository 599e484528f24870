package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleVerse  = lipgloss.NewStyle().Foreground(ColorFg).Italic(true)
)

// MoodStyle colors a category label. Unknown categories are dimmed.
func MoodStyle(mood domain.Category) lipgloss.Style {
	switch mood {
	case domain.CategoryNature:
		return StyleGreen
	case domain.CategoryEmotion:
		return StyleRed
	case domain.CategoryAbstract:
		return StylePurple
	case domain.CategorySensory:
		return StyleYellow
	default:
		return StyleDim
	}
}

// MoodBadge renders "● nature", or "● any mood" for the zero category.
func MoodBadge(mood domain.Category) string {
	if mood == "" {
		return StyleDim.Render("● any mood")
	}
	return MoodStyle(mood).Render("● " + string(mood))
}

// rhymeStyles cycles through the palette per scheme letter.
var rhymeStyles = []lipgloss.Style{StyleGreen, StyleBlue, StyleYellow, StylePurple, StyleRed}

// RhymeLetter colors a scheme letter so matching letters share a color.
func RhymeLetter(letter byte) string {
	i := 0
	switch {
	case letter >= 'A' && letter <= 'Z':
		i = int(letter - 'A')
	case letter >= 'a' && letter <= 'z':
		i = int(letter - 'a')
	}
	return rhymeStyles[i%len(rhymeStyles)].Render(string(letter))
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
