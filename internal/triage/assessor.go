package triage

import (
	"sort"
	"strings"

	"github.com/Hellboy28D/Petvet-Assist/internal/rules"
)

// Assessor maps a matched symptom set to an urgency level. Deterministic:
// max over per-symptom base urgencies, with duration-sensitive symptoms
// escalated one level when the text carries a duration/severity phrase.
type Assessor struct {
	base              map[Symptom]UrgencyLevel
	durationSensitive map[Symptom]bool
	// single-word phrases, matched against the token set
	tokenPhrases map[string]struct{}
	// phrases with spaces or punctuation, matched as substrings of the
	// lowercased text ("won't stop", "getting worse")
	textPhrases []string
}

func newAssessor(rs *rules.Ruleset) (*Assessor, error) {
	a := &Assessor{
		base:              make(map[Symptom]UrgencyLevel, len(rs.Symptoms)),
		durationSensitive: make(map[Symptom]bool, len(rs.Symptoms)),
		tokenPhrases:      make(map[string]struct{}),
	}

	for name, s := range rs.Symptoms {
		level, err := ParseUrgency(s.Urgency)
		if err != nil {
			return nil, err
		}
		a.base[Symptom(name)] = level
		a.durationSensitive[Symptom(name)] = s.DurationSensitive
	}

	for _, p := range rs.DurationPhrases {
		norm := strings.ToLower(strings.TrimSpace(p))
		if squeeze(norm) == norm {
			a.tokenPhrases[norm] = struct{}{}
		} else {
			a.textPhrases = append(a.textPhrases, norm)
		}
	}
	sort.Strings(a.textPhrases)
	return a, nil
}

// Assess returns the maximum urgency contributed by the matched symptoms.
// An empty symptom set is Low, never an error.
func (a *Assessor) Assess(symptoms []Symptom, text string) UrgencyLevel {
	if len(symptoms) == 0 {
		return Low
	}

	escalate := a.hasDurationPhrase(strings.ToLower(text))

	out := Low
	for _, sym := range symptoms {
		level := a.base[sym]
		if escalate && a.durationSensitive[sym] {
			level = level.Escalate()
		}
		if level > out {
			out = level
		}
	}
	return out
}

func (a *Assessor) hasDurationPhrase(norm string) bool {
	for _, tok := range tokenize(norm) {
		if _, ok := a.tokenPhrases[tok]; ok {
			return true
		}
	}
	for _, p := range a.textPhrases {
		if strings.Contains(norm, p) {
			return true
		}
	}
	return false
}
