package service

import "github.com/alexanderramin/stanza/internal/app"

// PoetryService composes poems and lines and analyzes poem text.
type PoetryService interface {
	app.ComposeUseCase
	app.LineUseCase
	app.AnalyzeUseCase
}

// LexiconService manages the stored vocabulary and pronunciations.
type LexiconService interface {
	app.ImportLexiconUseCase
	app.LexiconStatsUseCase
}
