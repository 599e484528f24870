package cli

import "github.com/alexanderramin/stanza/internal/app"

func (a *App) composeUseCase() app.ComposeUseCase {
	if a.ComposePort != nil {
		return a.ComposePort
	}
	return a.Poetry
}

func (a *App) lineUseCase() app.LineUseCase {
	if a.LinePort != nil {
		return a.LinePort
	}
	return a.Poetry
}

func (a *App) analyzeUseCase() app.AnalyzeUseCase {
	if a.AnalyzePort != nil {
		return a.AnalyzePort
	}
	return a.Poetry
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
