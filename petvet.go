// Package petvet exposes pet-symptom triage as a single library call: feed
// it a free-text description, get back an urgency level, a care tier,
// ordered actions, and the mandatory disclaimer. It never returns an error;
// thin or empty input just yields the LOW/monitor default.
package petvet

import (
	"context"
	"sync"

	"github.com/linnemanlabs/go-core/log"

	"github.com/Hellboy28D/Petvet-Assist/internal/rules"
	"github.com/Hellboy28D/Petvet-Assist/internal/triage"
)

// Re-exported domain types so callers never import internal packages.
type (
	TriageResult = triage.Result
	UrgencyLevel = triage.UrgencyLevel
	CareTier     = triage.CareTier
	Symptom      = triage.Symptom
	WellnessTask = triage.WellnessTask
)

// Urgency levels, lowest to highest.
const (
	Low    = triage.Low
	Medium = triage.Medium
	High   = triage.High
)

// Care tiers.
const (
	TierMonitor   = triage.TierMonitor
	TierGeneral   = triage.TierGeneral
	TierEmergency = triage.TierEmergency
)

// Assist is the triage facade bound to one immutable ruleset. Safe for
// concurrent use.
type Assist struct {
	svc *triage.Service
}

// New builds an Assist on the built-in rule tables.
func New() (*Assist, error) {
	return NewFromRulesFile("")
}

// NewFromRulesFile builds an Assist on a YAML ruleset file; an empty path
// means the built-in tables.
func NewFromRulesFile(path string) (*Assist, error) {
	rs := rules.Default()
	if path != "" {
		loaded, err := rules.Load(path)
		if err != nil {
			return nil, err
		}
		rs = loaded
	}

	engine, err := triage.NewEngine(rs)
	if err != nil {
		return nil, err
	}
	return &Assist{
		svc: triage.NewService(engine, triage.NewPlanner(rs), log.Nop(), triage.Hooks{}),
	}, nil
}

// Triage assesses a free-text symptom description.
func (a *Assist) Triage(ctx context.Context, description string) *TriageResult {
	return a.svc.Triage(ctx, description)
}

// DailyTasks returns the suggested wellness tasks for a species.
func (a *Assist) DailyTasks(species string) []WellnessTask {
	return a.svc.DailyTasks(species)
}

// defaultAssist is built once, on first use. The built-in tables are covered
// by tests, so construction cannot fail at runtime.
var defaultAssist = sync.OnceValue(func() *Assist {
	a, err := New()
	if err != nil {
		panic(err)
	}
	return a
})

// Triage is the package-level single-call form, using the built-in tables.
func Triage(ctx context.Context, description string) *TriageResult {
	return defaultAssist().Triage(ctx, description)
}
