package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alexanderramin/stanza/internal/phonetics"
)

// PronunciationSource adapts a PronunciationRepo to phonetics.Source. Each
// lookup runs under its own timeout, and answers are memoized because the
// generator re-counts the same words many times.
type PronunciationSource struct {
	repo    PronunciationRepo
	timeout time.Duration

	mu     sync.Mutex
	phones map[string][]string
	rhymes map[string][]string
}

// NewPronunciationSource wraps repo. A non-positive timeout disables the
// per-lookup deadline.
func NewPronunciationSource(repo PronunciationRepo, timeout time.Duration) *PronunciationSource {
	return &PronunciationSource{
		repo:    repo,
		timeout: timeout,
		phones:  make(map[string][]string),
		rhymes:  make(map[string][]string),
	}
}

var _ phonetics.Source = (*PronunciationSource)(nil)

func (s *PronunciationSource) lookupContext() (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.timeout)
}

// PhonesForWord implements phonetics.Source. Errors, including timeouts,
// are returned and not memoized.
func (s *PronunciationSource) PhonesForWord(word string) ([]string, error) {
	word = phonetics.NormalizeWord(word)
	s.mu.Lock()
	cached, ok := s.phones[word]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	ctx, cancel := s.lookupContext()
	defer cancel()
	phones, err := s.repo.PhonesForWord(ctx, word)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.phones[word] = phones
	s.mu.Unlock()
	return phones, nil
}

// Rhymes implements phonetics.Source: the sorted union of words sharing the
// rhyming part of any variant of word, excluding word itself.
func (s *PronunciationSource) Rhymes(word string) ([]string, error) {
	word = phonetics.NormalizeWord(word)
	s.mu.Lock()
	cached, ok := s.rhymes[word]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	variants, err := s.PhonesForWord(word)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.lookupContext()
	defer cancel()
	seen := make(map[string]bool)
	var out []string
	for _, phones := range variants {
		words, err := s.repo.WordsByRhymingPart(ctx, phonetics.RhymingPart(phones))
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			if w == word || seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
		}
	}
	sort.Strings(out)

	s.mu.Lock()
	s.rhymes[word] = out
	s.mu.Unlock()
	return out, nil
}
