package cli

import (
	"errors"

	"github.com/alexanderramin/stanza/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newStudioCmd(a *App) *cobra.Command {
	var (
		form formFlag
		mood moodFlag
	)

	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Regenerate poems interactively, with live analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return errors.New("studio needs an interactive terminal")
			}
			kind := form.kind
			if kind == "" {
				kind = domain.FormHaiku
			}
			m := newStudioModel(a.composeUseCase(), a.analyzeUseCase(), kind, mood.mood, seedFlag(cmd))
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().Var(&form, "form", "Starting form: haiku, tanka, sonnet or free_verse")
	addMoodFlag(cmd, &mood)
	return cmd
}
