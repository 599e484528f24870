package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stanza/internal/cli/formatter"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/spf13/cobra"
)

func newLexiconCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Manage the stored vocabulary and pronunciation dictionary",
		Long: `Stanza reads its vocabulary and dictionary from, in order: the files named
in the config, the lexicon stored in the database, the built-in data.
Imports replace the stored lexicon and take effect on the next run.`,
	}

	cmd.AddCommand(
		newLexiconImportCmd(a, domain.LexiconVocabulary),
		newLexiconImportCmd(a, domain.LexiconDictionary),
		newLexiconStatsCmd(a),
	)
	return cmd
}

func newLexiconImportCmd(a *App, kind domain.LexiconKind) *cobra.Command {
	use, short := "import-vocab [PATH]", "Store a YAML vocabulary file or directory (default: built-in)"
	if kind == domain.LexiconDictionary {
		use, short = "import-dict [PATH]", "Store a CMU pronunciation dictionary (default: starter dictionary)"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			if a.interactive() && !plainFlag(cmd) {
				stop := formatter.StartSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Importing %s…", kind))
				defer stop()
			}

			ctx := context.Background()
			var imp *domain.LexiconImport
			var err error
			if kind == domain.LexiconDictionary {
				imp, err = a.Lexicon.ImportDictionary(ctx, path)
			} else {
				imp, err = a.Lexicon.ImportVocabulary(ctx, path)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImport(imp))
			return nil
		},
	}
}

func newLexiconStatsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show stored lexicon sizes and recent imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.Lexicon.Stats(context.Background())
			if err != nil {
				return err
			}
			if plainFlag(cmd) {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "vocabulary: %d words (%s)\n", stats.TotalWords(), stats.VocabularyOrigin)
				fmt.Fprintf(out, "dictionary: %d words (%s)\n", stats.Pronunciations, stats.DictionaryOrigin)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		},
	}
}
