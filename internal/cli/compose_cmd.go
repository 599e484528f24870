package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// composeChoices collects the answers of the compose form.
type composeChoices struct {
	form  string
	mood  string
	lines string
}

func (c composeChoices) request() (kind domain.FormKind, mood domain.Category, lines int, err error) {
	kind, err = domain.ParseFormKind(c.form)
	if err != nil {
		return "", "", 0, err
	}
	return kind, domain.NormalizeCategory(c.mood), parsePositiveInt(c.lines, 0), nil
}

func newComposeCmd(a *App) *cobra.Command {
	var (
		form  formFlag
		mood  moodFlag
		lines int
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Choose a form and mood, then compose a poem",
		Long: `Compose a poem of any form. Without --form, an interactive form asks for
the poem form, mood and (for free verse) the number of lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			choices := composeChoices{form: string(form.kind), mood: string(mood.mood)}
			if lines > 0 {
				choices.lines = fmt.Sprint(lines)
			}

			if form.kind == "" {
				if !a.interactive() {
					return errors.New("--form is required when not running in a terminal")
				}
				if err := composeForm(&choices).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}

			kind, m, n, err := choices.request()
			if err != nil {
				return err
			}
			return runPoem(cmd, a, appPoemRequest(kind, m, n, seedFlag(cmd)))
		},
	}

	cmd.Flags().Var(&form, "form", "Poem form: haiku, tanka, sonnet or free_verse")
	addMoodFlag(cmd, &mood)
	cmd.Flags().IntVar(&lines, "lines", 0, "Free verse line count; 0 picks one at random")
	return cmd
}

// composeForm asks for form and mood, and for a line count when free verse
// is chosen.
func composeForm(c *composeChoices) *huh.Form {
	moods := []huh.Option[string]{huh.NewOption("Any", "")}
	for _, cat := range domain.BuiltinCategories {
		moods = append(moods, huh.NewOption(string(cat), string(cat)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Form").
				Options(
					huh.NewOption("Haiku (5/7/5)", string(domain.FormHaiku)),
					huh.NewOption("Tanka (5/7/5/7/7)", string(domain.FormTanka)),
					huh.NewOption("Sonnet (14 × 10, ABABCDCDEFEFGG)", string(domain.FormSonnet)),
					huh.NewOption("Free verse", string(domain.FormFreeVerse)),
				).
				Value(&c.form),
			huh.NewSelect[string]().
				Title("Mood").
				Options(moods...).
				Value(&c.mood),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Lines").
				Description("Blank picks a random count").
				Placeholder("6").
				Value(&c.lines).
				Validate(validatePositiveInt),
		).WithHideFunc(func() bool { return c.form != string(domain.FormFreeVerse) }),
	).WithTheme(stanzaHuhTheme()).WithShowHelp(false)
}
