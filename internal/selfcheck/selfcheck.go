// Package selfcheck runs the fixed validation scenarios that ship with the
// binary, so an installed petvet can verify its rule tables end to end.
package selfcheck

import (
	"context"

	"github.com/Hellboy28D/Petvet-Assist/internal/triage"
)

// Scenario is one built-in check: a description and the triage outcome the
// default rule tables must produce for it.
type Scenario struct {
	Description string
	WantUrgency triage.UrgencyLevel
	WantVetType triage.CareTier
}

// Failure records one scenario whose outcome did not match.
type Failure struct {
	Description string
	WantUrgency triage.UrgencyLevel
	GotUrgency  triage.UrgencyLevel
	WantVetType triage.CareTier
	GotVetType  triage.CareTier
}

// Report is the outcome of a selfcheck run.
type Report struct {
	Passed   int
	Failed   int
	Failures []Failure
}

// OK reports whether every scenario passed.
func (r *Report) OK() bool { return r.Failed == 0 }

var scenarios = []Scenario{
	{
		// duration phrase escalates the duration-sensitive symptoms
		Description: "My dog has been vomiting for 2 days and won't eat",
		WantUrgency: triage.High,
		WantVetType: triage.TierEmergency,
	},
	{
		Description: "Emergency! My cat is bleeding and collapsed",
		WantUrgency: triage.High,
		WantVetType: triage.TierEmergency,
	},
	{
		Description: "My puppy is scratching more than usual",
		WantUrgency: triage.Low,
		WantVetType: triage.TierMonitor,
	},
	{
		Description: "My dog had a seizure and his gums look pale",
		WantUrgency: triage.High,
		WantVetType: triage.TierEmergency,
	},
	{
		Description: "My cat has been coughing occasionally",
		WantUrgency: triage.Medium,
		WantVetType: triage.TierGeneral,
	},
	{
		Description: "My cat seems a little tired today",
		WantUrgency: triage.Medium,
		WantVetType: triage.TierGeneral,
	},
	{
		// highest matched symptom dominates
		Description: "vomiting and bleeding",
		WantUrgency: triage.High,
		WantVetType: triage.TierEmergency,
	},
	{
		// blank input falls back to the monitor default
		Description: "",
		WantUrgency: triage.Low,
		WantVetType: triage.TierMonitor,
	},
}

// Scenarios returns a copy of the built-in scenario table.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// Run triages every scenario against the given service and reports the
// outcomes.
func Run(ctx context.Context, svc *triage.Service) *Report {
	rep := &Report{}
	for _, sc := range scenarios {
		result := svc.Triage(ctx, sc.Description)
		if result.Urgency == sc.WantUrgency && result.VetType == sc.WantVetType {
			rep.Passed++
			continue
		}
		rep.Failed++
		rep.Failures = append(rep.Failures, Failure{
			Description: sc.Description,
			WantUrgency: sc.WantUrgency,
			GotUrgency:  result.Urgency,
			WantVetType: sc.WantVetType,
			GotVetType:  result.VetType,
		})
	}
	return rep
}
