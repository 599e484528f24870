package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/stanza/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// stanzaHuhTheme styles huh forms with the formatter palette.
func stanzaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Focused.Title = fg(formatter.ColorHeader).Bold(true)
	t.Focused.Description = fg(formatter.ColorDim)
	t.Focused.SelectSelector = fg(formatter.ColorHeader)
	t.Focused.SelectedOption = fg(formatter.ColorGreen)
	t.Focused.UnselectedOption = fg(formatter.ColorFg)
	t.Focused.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = fg(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = fg(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = fg(formatter.ColorHeader)
	t.Focused.TextInput.Text = fg(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = fg(formatter.ColorDim)

	t.Blurred.Title = fg(formatter.ColorDim)
	t.Blurred.SelectSelector = fg(formatter.ColorDim)
	t.Blurred.SelectedOption = fg(formatter.ColorDim)
	t.Blurred.UnselectedOption = fg(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = fg(formatter.ColorDim)
	t.Blurred.TextInput.Text = fg(formatter.ColorDim)

	return t
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// parsePositiveInt converts an already validated field, falling back for
// empty input.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
