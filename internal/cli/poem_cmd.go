package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/cli/formatter"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/spf13/cobra"
)

var formSummaries = map[domain.FormKind]string{
	domain.FormHaiku:  "Compose a haiku (5/7/5)",
	domain.FormTanka:  "Compose a tanka (5/7/5/7/7)",
	domain.FormSonnet: "Compose a Shakespearean sonnet (14 lines, ABABCDCDEFEFGG)",
}

func newFormCmd(app *App, kind domain.FormKind) *cobra.Command {
	var mood moodFlag

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: formSummaries[kind],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoem(cmd, app, appPoemRequest(kind, mood.mood, 0, seedFlag(cmd)))
		},
	}
	addMoodFlag(cmd, &mood)
	return cmd
}

func newFreeCmd(app *App) *cobra.Command {
	var mood moodFlag
	var lines int

	cmd := &cobra.Command{
		Use:     "free",
		Aliases: []string{"free-verse"},
		Short:   "Compose free verse with a drifting line length",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lines < 0 {
				return fmt.Errorf("--lines must not be negative")
			}
			return runPoem(cmd, app, appPoemRequest(domain.FormFreeVerse, mood.mood, lines, seedFlag(cmd)))
		},
	}
	addMoodFlag(cmd, &mood)
	cmd.Flags().IntVar(&lines, "lines", 0, "Number of lines; 0 picks one at random")
	return cmd
}

func appPoemRequest(kind domain.FormKind, mood domain.Category, lines int, seed int64) app.PoemRequest {
	return app.PoemRequest{Form: kind, Mood: mood, Lines: lines, Seed: seed}
}

func runPoem(cmd *cobra.Command, a *App, req app.PoemRequest) error {
	resp, err := a.composeUseCase().Compose(context.Background(), req)
	if err != nil {
		return err
	}
	if plainFlag(cmd) {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPoemPlain(resp))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPoem(resp))
	return nil
}
