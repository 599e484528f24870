package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/stanza/internal/analysis"
	"github.com/alexanderramin/stanza/internal/app"
	"github.com/alexanderramin/stanza/internal/domain"
)

// ErrEmptyPoem is returned when Analyze receives only whitespace.
var ErrEmptyPoem = errors.New("poem text is empty")

type poetryService struct {
	engine   *Engine
	seed     int64
	logger   *slog.Logger
	analyzer *analysis.Analyzer
	observer UseCaseObserver
}

// NewPoetryService creates a PoetryService. seed is the default for requests
// without one; zero means a fresh seed per run. logger receives per-line
// debug events and may be nil.
func NewPoetryService(engine *Engine, seed int64, logger *slog.Logger, observers ...UseCaseObserver) PoetryService {
	return &poetryService{
		engine:   engine,
		seed:     seed,
		logger:   logger,
		analyzer: analysis.NewAnalyzer(engine.Counter, engine.Rhymes, engine.Cache),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *poetryService) resolveSeed(requested int64) int64 {
	switch {
	case requested != 0:
		return requested
	case s.seed != 0:
		return s.seed
	}
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}

func (s *poetryService) stepLogger(runID string) *slog.Logger {
	if s.logger == nil {
		return nil
	}
	return s.logger.With("run_id", runID)
}

func (s *poetryService) Compose(ctx context.Context, req app.PoemRequest) (resp *app.PoemResponse, err error) {
	run := startUseCase(s.observer, "compose")
	defer func() { run.finish(ctx, err) }()

	mood := domain.NormalizeCategory(string(req.Mood))
	seed := s.resolveSeed(req.Seed)
	run.fields["form"] = string(req.Form)
	run.fields["mood"] = string(mood)
	run.fields["seed"] = seed

	session := s.engine.NewSession(seed, s.stepLogger(run.id))
	poem, err := session.Composer.Compose(req.Form, mood, req.Lines)
	if err != nil {
		return nil, fmt.Errorf("composing %s: %w", req.Form, err)
	}
	run.fields["lines"] = len(poem.Lines)

	syllables := make([]int, len(poem.Lines))
	for i, line := range poem.Lines {
		syllables[i] = s.engine.Counter.CountPhrase(line)
	}

	return &app.PoemResponse{
		RunID:          run.id,
		Seed:           seed,
		Form:           poem.Kind,
		Mood:           mood,
		MoodRecognized: mood == "" || s.engine.Cache.Has(mood),
		Lines:          poem.Lines,
		RhymeScheme:    analysis.RhymeScheme(poem.Text(), s.engine.Rhymes),
		Syllables:      syllables,
	}, nil
}

func (s *poetryService) GenerateLine(ctx context.Context, req app.LineRequest) (resp *app.LineResponse, err error) {
	run := startUseCase(s.observer, "generate-line")
	defer func() { run.finish(ctx, err) }()

	if req.Syllables <= 0 {
		return nil, fmt.Errorf("syllables must be positive, got %d", req.Syllables)
	}

	seed := s.resolveSeed(req.Seed)
	run.fields["syllables"] = req.Syllables
	run.fields["style"] = string(req.Style)
	run.fields["seed"] = seed

	session := s.engine.NewSession(seed, s.stepLogger(run.id))
	endWord := strings.ToLower(strings.TrimSpace(req.EndWord))
	text := session.Generator.GenerateLine(domain.LineSpec{
		Syllables: req.Syllables,
		Mood:      domain.NormalizeCategory(string(req.Mood)),
		EndWord:   endWord,
		Style:     req.Style,
	})

	fields := strings.Fields(text)
	return &app.LineResponse{
		RunID:          run.id,
		Seed:           seed,
		Text:           text,
		Syllables:      s.engine.Counter.CountPhrase(text),
		EndWordApplied: endWord != "" && len(fields) > 0 && fields[len(fields)-1] == endWord,
	}, nil
}

func (s *poetryService) Analyze(ctx context.Context, req app.AnalyzeRequest) (resp *app.AnalyzeResponse, err error) {
	run := startUseCase(s.observer, "analyze")
	defer func() { run.finish(ctx, err) }()

	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyPoem
	}
	report := s.analyzer.Analyze(req.Text)
	run.fields["lines"] = report.Structure.Lines
	run.fields["rhyme_scheme"] = report.RhymeScheme

	return &app.AnalyzeResponse{RunID: run.id, Report: report}, nil
}
