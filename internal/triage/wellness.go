package triage

import (
	"strings"

	"github.com/Hellboy28D/Petvet-Assist/internal/rules"
)

// WellnessTask is one suggested daily care item.
type WellnessTask struct {
	Task     string `json:"task"`
	Duration string `json:"duration"`
	Category string `json:"category"`
}

// Planner suggests daily wellness tasks from the ruleset's task tables.
type Planner struct {
	base      []WellnessTask
	bySpecies map[string][]WellnessTask
}

// NewPlanner compiles the ruleset's wellness tables into a planner.
func NewPlanner(rs *rules.Ruleset) *Planner {
	p := &Planner{
		base:      convertTasks(rs.Wellness.Base),
		bySpecies: make(map[string][]WellnessTask, len(rs.Wellness.BySpecies)),
	}
	for species, tasks := range rs.Wellness.BySpecies {
		p.bySpecies[strings.ToLower(species)] = convertTasks(tasks)
	}
	return p
}

// DailyTasks returns the base tasks plus any species-specific extras.
// Unknown species get the base list.
func (p *Planner) DailyTasks(species string) []WellnessTask {
	extras := p.bySpecies[strings.ToLower(strings.TrimSpace(species))]
	out := make([]WellnessTask, 0, len(p.base)+len(extras))
	out = append(out, p.base...)
	out = append(out, extras...)
	return out
}

func convertTasks(in []rules.WellnessTask) []WellnessTask {
	out := make([]WellnessTask, 0, len(in))
	for _, t := range in {
		out = append(out, WellnessTask{Task: t.Task, Duration: t.Duration, Category: t.Category})
	}
	return out
}
