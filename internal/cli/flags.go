package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// moodFlag accepts any category name. Names outside the loaded vocabulary
// are passed through; the poem reports them as unrecognized.
type moodFlag struct {
	mood domain.Category
}

func (f *moodFlag) String() string { return string(f.mood) }
func (f *moodFlag) Type() string   { return "mood" }

func (f *moodFlag) Set(s string) error {
	c := domain.NormalizeCategory(s)
	if c == "" {
		return errors.New("mood must not be blank")
	}
	f.mood = c
	return nil
}

type styleFlag struct {
	style domain.LineStyle
}

func (f *styleFlag) String() string { return string(f.style) }
func (f *styleFlag) Type() string   { return "style" }

func (f *styleFlag) Set(s string) error {
	style, err := domain.ParseLineStyle(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	f.style = style
	return nil
}

type formFlag struct {
	kind domain.FormKind
}

func (f *formFlag) String() string { return string(f.kind) }
func (f *formFlag) Type() string   { return "form" }

func (f *formFlag) Set(s string) error {
	kind, err := domain.ParseFormKind(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	f.kind = kind
	return nil
}

var (
	_ pflag.Value = (*moodFlag)(nil)
	_ pflag.Value = (*styleFlag)(nil)
	_ pflag.Value = (*formFlag)(nil)
)

func addMoodFlag(cmd *cobra.Command, f *moodFlag) {
	cmd.Flags().Var(f, "mood", "Bias word choice toward a category (nature, emotion, abstract, sensory)")
	_ = cmd.RegisterFlagCompletionFunc("mood", completeMoods)
}

func completeMoods(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	out := make([]string, len(domain.BuiltinCategories))
	for i, c := range domain.BuiltinCategories {
		out[i] = string(c)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func completeStyles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"standard", "metaphor", "image"}, cobra.ShellCompDirectiveNoFileComp
}
