package triage

import (
	"fmt"
	"strings"

	"github.com/Hellboy28D/Petvet-Assist/internal/rules"
)

// Engine is the pure triage pipeline: extract symptoms, assess urgency,
// build the recommendation. It holds only immutable tables compiled from a
// validated ruleset, so it is safe for concurrent use without locking.
type Engine struct {
	extractor   *Extractor
	assessor    *Assessor
	recommender *Recommender

	disclaimer   string
	emptyActions []string
}

// NewEngine compiles a ruleset into an engine. The ruleset is validated
// first; a nil error guarantees every urgency level resolves to a non-empty
// recommendation.
func NewEngine(rs *rules.Ruleset) (*Engine, error) {
	if rs == nil {
		return nil, fmt.Errorf("triage: ruleset is required")
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("triage: invalid ruleset: %w", err)
	}

	assessor, err := newAssessor(rs)
	if err != nil {
		return nil, fmt.Errorf("triage: compile assessor: %w", err)
	}
	recommender, err := newRecommender(rs)
	if err != nil {
		return nil, fmt.Errorf("triage: compile recommender: %w", err)
	}

	return &Engine{
		extractor:    newExtractor(rs),
		assessor:     assessor,
		recommender:  recommender,
		disclaimer:   rs.Disclaimer,
		emptyActions: rs.EmptyInputActions,
	}, nil
}

// Run executes the pipeline over the description and returns a Result with
// the urgency, care tier, matched symptoms, actions, and disclaimer filled
// in. It never fails: blank input yields the Low/monitor default with the
// ruleset's "more detail" actions.
func (e *Engine) Run(text string) *Result {
	if strings.TrimSpace(text) == "" {
		actions := make([]string, len(e.emptyActions))
		copy(actions, e.emptyActions)
		return &Result{
			Urgency:    Low,
			VetType:    TierMonitor,
			Actions:    actions,
			Disclaimer: e.disclaimer,
		}
	}

	symptoms := e.extractor.Extract(text)
	urgency := e.assessor.Assess(symptoms, text)
	rec := e.recommender.Recommend(urgency)

	return &Result{
		Urgency:    urgency,
		VetType:    rec.VetType,
		Symptoms:   symptoms,
		Actions:    rec.Actions,
		Disclaimer: e.disclaimer,
	}
}
