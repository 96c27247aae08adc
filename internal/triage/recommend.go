package triage

import (
	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/Hellboy28D/Petvet-Assist/internal/rules"
)

// Recommendation is the canned bundle for one urgency level.
type Recommendation struct {
	VetType CareTier
	Actions []string
}

// Recommender looks up the static recommendation bundle for an urgency
// level. The table is validated to cover every level at construction.
type Recommender struct {
	byUrgency map[UrgencyLevel]Recommendation
}

func newRecommender(rs *rules.Ruleset) (*Recommender, error) {
	r := &Recommender{byUrgency: make(map[UrgencyLevel]Recommendation, len(rs.Recommendations))}
	for name, rec := range rs.Recommendations {
		level, err := ParseUrgency(name)
		if err != nil {
			return nil, err
		}
		r.byUrgency[level] = Recommendation{
			VetType: CareTier(rec.CareTier),
			Actions: rec.Actions,
		}
	}
	return r, nil
}

// Recommend returns the bundle for the given urgency. A miss is unreachable
// for the closed enum given a validated ruleset, so it panics rather than
// returning an error.
func (r *Recommender) Recommend(u UrgencyLevel) Recommendation {
	rec, ok := r.byUrgency[u]
	if !ok {
		panic(xerrors.New("recommendation table missing urgency " + u.String()))
	}
	// copy so callers cannot mutate the shared table
	actions := make([]string, len(rec.Actions))
	copy(actions, rec.Actions)
	return Recommendation{VetType: rec.VetType, Actions: actions}
}
