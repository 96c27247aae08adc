package triage

import (
	"testing"

	"github.com/Hellboy28D/Petvet-Assist/internal/rules"
)

func wellnessRuleset() *rules.Ruleset {
	rs := testRuleset()
	rs.Wellness = rules.Wellness{
		Base: []rules.WellnessTask{
			{Task: "Refill water", Duration: "2 min", Category: "hydration"},
			{Task: "Visual check", Duration: "3 min", Category: "monitoring"},
		},
		BySpecies: map[string][]rules.WellnessTask{
			"cat": {{Task: "Clean litter box", Duration: "3 min", Category: "hygiene"}},
			"dog": {{Task: "Short walk", Duration: "15 min", Category: "exercise"}},
		},
	}
	return rs
}

func TestDailyTasks_BaseForUnknownSpecies(t *testing.T) {
	t.Parallel()

	p := NewPlanner(wellnessRuleset())

	got := p.DailyTasks("ferret")
	if len(got) != 2 {
		t.Fatalf("tasks = %d, want 2 base tasks", len(got))
	}
	if got[0].Task != "Refill water" {
		t.Errorf("first task = %q, want %q", got[0].Task, "Refill water")
	}
}

func TestDailyTasks_SpeciesExtrasAppended(t *testing.T) {
	t.Parallel()

	p := NewPlanner(wellnessRuleset())

	got := p.DailyTasks("cat")
	if len(got) != 3 {
		t.Fatalf("tasks = %d, want base + cat extra", len(got))
	}
	if got[2].Task != "Clean litter box" {
		t.Errorf("extra task = %q, want %q", got[2].Task, "Clean litter box")
	}

	// species lookup is case- and whitespace-insensitive
	if len(p.DailyTasks("  Dog ")) != 3 {
		t.Error("expected dog extras for padded species name")
	}
}

func TestDailyTasks_DefaultRulesetNonEmpty(t *testing.T) {
	t.Parallel()

	p := NewPlanner(rules.Default())
	for _, species := range []string{"dog", "cat", "rabbit", ""} {
		if len(p.DailyTasks(species)) == 0 {
			t.Errorf("DailyTasks(%q) is empty", species)
		}
	}
}
