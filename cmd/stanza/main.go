package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/stanza/internal/cli"
	"github.com/alexanderramin/stanza/internal/config"
	"github.com/alexanderramin/stanza/internal/db"
	"github.com/alexanderramin/stanza/internal/repository"
	"github.com/alexanderramin/stanza/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := config.Path()
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := service.NewLogger(os.Stderr, cfg.SlogLevel(), cfg.LogFormat)
	observer := service.NewLogUseCaseObserver(logger)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	vocabRepo := repository.NewSQLiteVocabularyRepo(database)
	pronRepo := repository.NewSQLitePronunciationRepo(database)
	importRepo := repository.NewSQLiteLexiconImportRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	engine, err := service.LoadEngine(context.Background(), cfg, vocabRepo, pronRepo)
	if err != nil {
		return err
	}

	app := &cli.App{
		Poetry:     service.NewPoetryService(engine, cfg.Seed, logger, observer),
		Lexicon:    service.NewLexiconService(vocabRepo, pronRepo, importRepo, uow, engine, observer),
		Config:     cfg,
		ConfigPath: configPath,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
