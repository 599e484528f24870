package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [FILE|-]",
		Short: "Analyze rhyme, meter and sound devices of a poem",
		Long: `Analyze a poem read from FILE, or from standard input when FILE is "-"
or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readPoem(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			resp, err := a.analyzeUseCase().Analyze(context.Background(), app.AnalyzeRequest{Text: text})
			if err != nil {
				return err
			}
			if plainFlag(cmd) {
				r := resp.Report
				fmt.Fprintf(cmd.OutOrStdout(), "rhyme_scheme: %s\n", r.RhymeScheme)
				fmt.Fprintf(cmd.OutOrStdout(), "syllables: %s\n", strings.Trim(fmt.Sprint(r.Structure.SyllablesPerLine), "[]"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAnalysis(resp.Report))
			return nil
		},
	}
	return cmd
}

func readPoem(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading poem: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading poem: %w", err)
	}
	return string(raw), nil
}
