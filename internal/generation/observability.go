package generation

import (
	"context"
	"log/slog"
)

// Step names a stage of the line generation policy.
type Step string

const (
	StepMood       Step = "mood"
	StepDegenerate Step = "degenerate"
	StepMetaphor   Step = "metaphor"
	StepImage      Step = "image"
	StepSimple     Step = "simple"
	StepStandard   Step = "standard"
	StepEndWord    Step = "end_word"
)

// StepEvent records what one stage did for a line.
type StepEvent struct {
	Step     Step
	Target   int
	Accepted bool
	Reason   Reason
	Text     string
}

// Observer receives step events, mostly to explain fall-throughs.
type Observer interface {
	OnStep(event StepEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnStep(StepEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver reports step events at debug level. A nil logger yields a
// NoopObserver.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) OnStep(event StepEvent) {
	attrs := []any{
		"step", string(event.Step),
		"target", event.Target,
		"accepted", event.Accepted,
	}
	if event.Reason != ReasonNone {
		attrs = append(attrs, "reason", string(event.Reason))
	}
	if event.Text != "" {
		attrs = append(attrs, "text", event.Text)
	}
	o.logger.Log(context.Background(), slog.LevelDebug, "line_step", attrs...)
}

func (g *Generator) observe(event StepEvent) {
	g.observer.OnStep(event)
}
