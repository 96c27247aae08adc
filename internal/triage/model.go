package triage

import (
	"fmt"
	"time"
)

// UrgencyLevel classifies how quickly a pet should be seen. Levels are
// totally ordered: Low < Medium < High.
type UrgencyLevel int

const (
	// Low means no recognized risk; watch and wait.
	Low UrgencyLevel = iota

	// Medium means a vet visit within a day or two.
	Medium

	// High means emergency care now.
	High
)

var urgencyNames = map[UrgencyLevel]string{
	Low:    "LOW",
	Medium: "MEDIUM",
	High:   "HIGH",
}

func (u UrgencyLevel) String() string {
	if s, ok := urgencyNames[u]; ok {
		return s
	}
	return fmt.Sprintf("UrgencyLevel(%d)", int(u))
}

// Escalate returns the next level up, capped at High.
func (u UrgencyLevel) Escalate() UrgencyLevel {
	if u >= High {
		return High
	}
	return u + 1
}

// MarshalText encodes the urgency as its enum string (LOW/MEDIUM/HIGH).
func (u UrgencyLevel) MarshalText() ([]byte, error) {
	s, ok := urgencyNames[u]
	if !ok {
		return nil, fmt.Errorf("triage: unknown urgency level %d", int(u))
	}
	return []byte(s), nil
}

// UnmarshalText decodes an enum string into an urgency level.
func (u *UrgencyLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseUrgency(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUrgency maps the wire/config form (LOW/MEDIUM/HIGH) to an UrgencyLevel.
func ParseUrgency(s string) (UrgencyLevel, error) {
	for level, name := range urgencyNames {
		if s == name {
			return level, nil
		}
	}
	return Low, fmt.Errorf("triage: unknown urgency level %q", s)
}

// CareTier is the recommended venue/intensity of care.
type CareTier string

const (
	// TierMonitor means watch the pet at home.
	TierMonitor CareTier = "monitor"

	// TierGeneral means a regular vet appointment.
	TierGeneral CareTier = "general"

	// TierEmergency means an emergency clinic, now.
	TierEmergency CareTier = "emergency"
)

// TierFor maps an urgency level to its care tier. The mapping is total and
// one-to-one.
func TierFor(u UrgencyLevel) CareTier {
	switch u {
	case High:
		return TierEmergency
	case Medium:
		return TierGeneral
	default:
		return TierMonitor
	}
}

// Symptom is a canonical symptom identifier defined by the ruleset,
// e.g. "vomiting" or "pale_gums".
type Symptom string

// Result is the outcome of a triage call. Created once per call, owned by
// the caller, never shared.
type Result struct {
	ID         string       `json:"id"`
	Urgency    UrgencyLevel `json:"urgency"`
	VetType    CareTier     `json:"vet_type"`
	Symptoms   []Symptom    `json:"symptoms,omitempty"`
	Actions    []string     `json:"actions"`
	Disclaimer string       `json:"disclaimer"`
	CreatedAt  time.Time    `json:"created_at"`
	Duration   float64      `json:"duration_seconds,omitempty"`
}
