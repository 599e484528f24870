package app

import (
	"strings"

	"github.com/alexanderramin/stanza/internal/analysis"
	"github.com/alexanderramin/stanza/internal/domain"
)

// PoemRequest asks for one poem. A zero Seed picks the configured seed, or
// a fresh one.
type PoemRequest struct {
	Form  domain.FormKind
	Mood  domain.Category
	Lines int // free verse only; 0 picks a random count
	Seed  int64
}

type PoemResponse struct {
	RunID          string
	Seed           int64
	Form           domain.FormKind
	Mood           domain.Category
	MoodRecognized bool
	Lines          []string
	RhymeScheme    string
	Syllables      []int
}

// Text joins the poem lines with newlines.
func (r *PoemResponse) Text() string { return strings.Join(r.Lines, "\n") }

type LineRequest struct {
	Syllables int
	Mood      domain.Category
	EndWord   string
	Style     domain.LineStyle
	Seed      int64
}

type LineResponse struct {
	RunID     string
	Seed      int64
	Text      string
	Syllables int
	// EndWordApplied reports whether the forced end word made it into the line.
	EndWordApplied bool
}

type AnalyzeRequest struct {
	Text string
}

type AnalyzeResponse struct {
	RunID  string
	Report analysis.Report
}
