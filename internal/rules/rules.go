// Package rules holds the replaceable triage rule tables: symptom keywords,
// urgency weights, duration phrases, recommendation bundles, the disclaimer,
// and wellness task lists. A validated default set is compiled into the
// binary; operators can swap it for a YAML file without recompiling.
package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Urgency level names accepted in rule files, lowest to highest.
var urgencyNames = []string{"LOW", "MEDIUM", "HIGH"}

// Care tier names accepted in rule files.
var careTierNames = map[string]struct{}{
	"monitor":   {},
	"general":   {},
	"emergency": {},
}

// SymptomRule describes one canonical symptom: its base urgency, whether a
// duration/severity phrase in the text escalates it, and the keywords that
// map onto it.
type SymptomRule struct {
	Urgency           string   `yaml:"urgency"`
	DurationSensitive bool     `yaml:"duration_sensitive"`
	Keywords          []string `yaml:"keywords"`
}

// Recommendation bundles the care tier and ordered actions for one urgency level.
type Recommendation struct {
	CareTier string   `yaml:"care_tier"`
	Actions  []string `yaml:"actions"`
}

// WellnessTask is one suggested daily care item.
type WellnessTask struct {
	Task     string `yaml:"task" json:"task"`
	Duration string `yaml:"duration" json:"duration"`
	Category string `yaml:"category" json:"category"`
}

// Wellness holds the daily task lists: a base set for every pet plus
// species-specific additions.
type Wellness struct {
	Base      []WellnessTask            `yaml:"base"`
	BySpecies map[string][]WellnessTask `yaml:"by_species"`
}

// Ruleset is the full triage configuration. Immutable after load; share it
// read-only across components.
type Ruleset struct {
	Disclaimer        string                    `yaml:"disclaimer"`
	Symptoms          map[string]SymptomRule    `yaml:"symptoms"`
	DurationPhrases   []string                  `yaml:"duration_phrases"`
	Recommendations   map[string]Recommendation `yaml:"recommendations"`
	EmptyInputActions []string                  `yaml:"empty_input_actions"`
	Wellness          Wellness                  `yaml:"wellness"`
}

//go:embed defaults.yaml
var defaultsYAML []byte

// Default returns the compiled-in ruleset. The embedded file is covered by
// tests, so a parse or validation failure here is a build defect.
func Default() *Ruleset {
	rs, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("rules: embedded default ruleset is invalid: %v", err))
	}
	return rs
}

// Parse decodes and validates a YAML ruleset.
func Parse(data []byte) (*Ruleset, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("rules: decode: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("rules: validate: %w", err)
	}
	return &rs, nil
}

// Load reads and validates a ruleset from a YAML file.
func Load(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config, not request input
	if err != nil {
		return nil, fmt.Errorf("rules: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the structural invariants every ruleset must satisfy.
// It returns all defects joined, or nil.
func (r *Ruleset) Validate() error {
	var errs []error

	if r.Disclaimer == "" {
		errs = append(errs, errors.New("disclaimer must not be empty"))
	}
	if len(r.Symptoms) == 0 {
		errs = append(errs, errors.New("at least one symptom is required"))
	}
	for name, s := range r.Symptoms {
		if !validUrgency(s.Urgency) {
			errs = append(errs, fmt.Errorf("symptom %q: invalid urgency %q (must be one of %v)", name, s.Urgency, urgencyNames))
		}
		if len(s.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("symptom %q: at least one keyword is required", name))
		}
		for _, kw := range s.Keywords {
			if kw == "" {
				errs = append(errs, fmt.Errorf("symptom %q: empty keyword", name))
			}
		}
	}

	// Recommendations must cover every urgency level exhaustively so the
	// lookup has no error path at triage time.
	for _, level := range urgencyNames {
		rec, ok := r.Recommendations[level]
		if !ok {
			errs = append(errs, fmt.Errorf("recommendations missing urgency level %q", level))
			continue
		}
		if _, ok := careTierNames[rec.CareTier]; !ok {
			errs = append(errs, fmt.Errorf("recommendation %q: invalid care tier %q", level, rec.CareTier))
		}
		if len(rec.Actions) == 0 {
			errs = append(errs, fmt.Errorf("recommendation %q: actions must not be empty", level))
		}
	}
	for level := range r.Recommendations {
		if !validUrgency(level) {
			errs = append(errs, fmt.Errorf("recommendations contain unknown urgency level %q", level))
		}
	}

	if len(r.EmptyInputActions) == 0 {
		errs = append(errs, errors.New("empty_input_actions must not be empty"))
	}
	for _, p := range r.DurationPhrases {
		if p == "" {
			errs = append(errs, errors.New("duration_phrases must not contain empty entries"))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validUrgency(s string) bool {
	for _, u := range urgencyNames {
		if s == u {
			return true
		}
	}
	return false
}
