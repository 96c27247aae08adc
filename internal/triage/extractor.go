package triage

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Hellboy28D/Petvet-Assist/internal/rules"
)

// Extractor scans free text for known symptom keywords. Pure function of the
// input and the immutable keyword tables; safe for concurrent use.
type Extractor struct {
	// single-token keywords, matched against the token set
	tokenKeywords map[string][]Symptom
	// multi-word keywords, matched as substrings of the space-squeezed text
	phraseKeywords []phraseKeyword
}

type phraseKeyword struct {
	squeezed string
	symptoms []Symptom
}

func newExtractor(rs *rules.Ruleset) *Extractor {
	e := &Extractor{tokenKeywords: make(map[string][]Symptom)}

	// Build in sorted symptom order so phraseKeywords is deterministic.
	names := make([]string, 0, len(rs.Symptoms))
	for name := range rs.Symptoms {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sym := Symptom(name)
		for _, kw := range rs.Symptoms[name].Keywords {
			norm := strings.ToLower(strings.TrimSpace(kw))
			if len(tokenize(norm)) == 1 && squeeze(norm) == norm {
				e.tokenKeywords[norm] = append(e.tokenKeywords[norm], sym)
				continue
			}
			e.phraseKeywords = append(e.phraseKeywords, phraseKeyword{
				squeezed: squeeze(norm),
				symptoms: []Symptom{sym},
			})
		}
	}
	return e
}

// Extract returns the canonical symptoms recognized in text, sorted and
// deduplicated. No match is an empty slice, not an error.
func (e *Extractor) Extract(text string) []Symptom {
	norm := strings.ToLower(text)
	squeezed := squeeze(norm)

	found := make(map[Symptom]struct{})

	for _, tok := range tokenize(norm) {
		for _, sym := range e.tokenKeywords[tok] {
			found[sym] = struct{}{}
		}
	}

	for _, pk := range e.phraseKeywords {
		if strings.Contains(squeezed, pk.squeezed) {
			for _, sym := range pk.symptoms {
				found[sym] = struct{}{}
			}
		}
	}

	if len(found) == 0 {
		return nil
	}
	out := make([]Symptom, 0, len(found))
	for sym := range found {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// tokenize splits on non-alphanumeric boundaries.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// squeeze drops every non-alphanumeric rune, so "pale  gums" and
// "pale gums!" both reduce to "palegums".
func squeeze(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return -1
	}, s)
}
