package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLineCmd(a *App) *cobra.Command {
	var (
		mood      moodFlag
		style     styleFlag
		syllables int
		endWord   string
	)

	cmd := &cobra.Command{
		Use:   "line",
		Short: "Generate a single line within a syllable budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.lineUseCase().GenerateLine(context.Background(), app.LineRequest{
				Syllables: syllables,
				Mood:      mood.mood,
				EndWord:   endWord,
				Style:     style.style,
				Seed:      seedFlag(cmd),
			})
			if err != nil {
				return err
			}
			if plainFlag(cmd) {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLine(resp, syllables, endWord))
			return nil
		},
	}

	addMoodFlag(cmd, &mood)
	cmd.Flags().Var(&style, "style", "Line style: standard, metaphor or image")
	_ = cmd.RegisterFlagCompletionFunc("style", completeStyles)
	cmd.Flags().IntVarP(&syllables, "syllables", "s", 7, "Syllable budget for the line")
	cmd.Flags().StringVar(&endWord, "end", "", "Try to end the line on this word")
	return cmd
}
