package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/stanza/internal/config"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/phonetics"
	"github.com/alexanderramin/stanza/internal/vocabulary"
)

// recordingObserver keeps every use-case event.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Default()
	return NewEngine(vocabulary.Default(), phonetics.Starter(), cfg.Policy(), domain.DefaultFreeVerseRange())
}
