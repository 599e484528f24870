package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/stanza/internal/analysis"
	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/cli/formatter"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type studioKeyMap struct {
	Next    key.Binding
	Form    key.Binding
	Mood    key.Binding
	Analyze key.Binding
	Quit    key.Binding
}

func defaultStudioKeys() studioKeyMap {
	return studioKeyMap{
		Next:    key.NewBinding(key.WithKeys("n", " ", "enter"), key.WithHelp("n", "new poem")),
		Form:    key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "form")),
		Mood:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mood")),
		Analyze: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analysis")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k studioKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Form, k.Mood, k.Analyze, k.Quit}
}

type poemComposedMsg struct {
	resp *app.PoemResponse
	err  error
}

type poemAnalyzedMsg struct {
	runID  string
	report analysis.Report
	err    error
}

var studioForms = []domain.FormKind{domain.FormHaiku, domain.FormTanka, domain.FormSonnet, domain.FormFreeVerse}

// studioModel regenerates poems on key presses. A non-zero seed makes the
// whole session reproducible: poem n uses seed+n.
type studioModel struct {
	compose app.ComposeUseCase
	analyze app.AnalyzeUseCase
	keys    studioKeyMap

	moods []domain.Category
	form  int
	mood  int
	seed  int64
	count int64

	poem         *app.PoemResponse
	report       *analysis.Report
	showAnalysis bool
	busy         bool
	err          error
}

func newStudioModel(compose app.ComposeUseCase, analyze app.AnalyzeUseCase, form domain.FormKind, mood domain.Category, seed int64) studioModel {
	m := studioModel{
		compose: compose,
		analyze: analyze,
		keys:    defaultStudioKeys(),
		moods:   append([]domain.Category{""}, domain.BuiltinCategories...),
		seed:    seed,
	}
	for i, f := range studioForms {
		if f == form {
			m.form = i
		}
	}
	if mood != "" {
		m.mood = -1
		for i, c := range m.moods {
			if c == mood {
				m.mood = i
			}
		}
		if m.mood < 0 {
			m.moods = append(m.moods, mood)
			m.mood = len(m.moods) - 1
		}
	}
	return m
}

func (m studioModel) Init() tea.Cmd {
	return m.composeCmd()
}

func (m studioModel) composeCmd() tea.Cmd {
	req := app.PoemRequest{Form: studioForms[m.form], Mood: m.moods[m.mood]}
	if m.seed != 0 {
		req.Seed = m.seed + m.count
	}
	compose := m.compose
	return func() tea.Msg {
		resp, err := compose.Compose(context.Background(), req)
		return poemComposedMsg{resp: resp, err: err}
	}
}

func (m studioModel) analyzeCmd() tea.Cmd {
	if m.poem == nil {
		return nil
	}
	runID, text, analyze := m.poem.RunID, m.poem.Text(), m.analyze
	return func() tea.Msg {
		resp, err := analyze.Analyze(context.Background(), app.AnalyzeRequest{Text: text})
		if err != nil {
			return poemAnalyzedMsg{runID: runID, err: err}
		}
		return poemAnalyzedMsg{runID: runID, report: resp.Report}
	}
}

func (m studioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case poemComposedMsg:
		m.busy = false
		m.count++
		m.poem, m.err, m.report = msg.resp, msg.err, nil
		if m.showAnalysis {
			return m, m.analyzeCmd()
		}
		return m, nil

	case poemAnalyzedMsg:
		// Drop results for a poem that has since been replaced.
		if m.poem == nil || msg.runID != m.poem.RunID {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		report := msg.report
		m.report = &report
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m studioModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case m.busy:
		return m, nil
	case key.Matches(msg, m.keys.Next):
	case key.Matches(msg, m.keys.Form):
		m.form = (m.form + 1) % len(studioForms)
	case key.Matches(msg, m.keys.Mood):
		m.mood = (m.mood + 1) % len(m.moods)
	case key.Matches(msg, m.keys.Analyze):
		m.showAnalysis = !m.showAnalysis
		if m.showAnalysis && m.report == nil {
			return m, m.analyzeCmd()
		}
		return m, nil
	default:
		return m, nil
	}
	m.busy = true
	return m, m.composeCmd()
}

func (m studioModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		formatter.StyleHeader.Render("STANZA STUDIO"),
		formatter.Bold(strings.ReplaceAll(string(studioForms[m.form]), "_", " ")),
		formatter.MoodBadge(m.moods[m.mood]),
	)

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.poem == nil:
		b.WriteString(formatter.Dim("composing…") + "\n")
	default:
		b.WriteString(formatter.FormatPoem(m.poem) + "\n")
	}

	if m.showAnalysis && m.report != nil {
		b.WriteString(formatter.FormatAnalysis(*m.report) + "\n")
	}

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		help = append(help, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	b.WriteString("\n" + strings.Join(help, formatter.Dim(" • ")) + "\n")
	return b.String()
}
