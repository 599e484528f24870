package generation

// Reason explains why a strategy gave up.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonSkipped          Reason = "skipped"
	ReasonNoCandidates     Reason = "no_candidates"
	ReasonRetriesExhausted Reason = "retries_exhausted"
	ReasonBudgetSpent      Reason = "budget_spent"
	ReasonOverBudget       Reason = "over_budget"
	ReasonTooFewCategories Reason = "too_few_categories"
	ReasonUnknownMood      Reason = "unknown_mood"
)

// Outcome is the result of one generation strategy: either a phrase or the
// reason it was abandoned.
type Outcome struct {
	Text   string
	Reason Reason
}

func accept(text string) Outcome { return Outcome{Text: text} }

func abandon(r Reason) Outcome { return Outcome{Reason: r} }

// OK reports whether the strategy produced a phrase.
func (o Outcome) OK() bool { return o.Reason == ReasonNone && o.Text != "" }
