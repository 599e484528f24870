package cli

import (
	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/config"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Poetry  service.PoetryService
	Lexicon service.LexiconService

	// Optional narrower ports. When nil, the services above serve them.
	ComposePort app.ComposeUseCase
	LinePort    app.LineUseCase
	AnalyzePort app.AnalyzeUseCase

	Config     config.Config
	ConfigPath string

	// IsInteractive reports whether stdin is a terminal. nil means never.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "stanza" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stanza",
		Short:         "Compose and analyze constrained poetry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Int64("seed", 0, "Random seed; 0 uses the configured seed or a fresh one")
	root.PersistentFlags().Bool("plain", false, "Print bare text without boxes or meters")

	root.AddCommand(
		newFormCmd(app, domain.FormHaiku),
		newFormCmd(app, domain.FormTanka),
		newFormCmd(app, domain.FormSonnet),
		newFreeCmd(app),
		newLineCmd(app),
		newAnalyzeCmd(app),
		newComposeCmd(app),
		newStudioCmd(app),
		newLexiconCmd(app),
		newConfigCmd(app),
	)
	return root
}

func seedFlag(cmd *cobra.Command) int64 {
	seed, _ := cmd.Flags().GetInt64("seed")
	return seed
}

func plainFlag(cmd *cobra.Command) bool {
	plain, _ := cmd.Flags().GetBool("plain")
	return plain
}
