package triage

import (
	"reflect"
	"testing"
)

func testExtractor() *Extractor {
	return newExtractor(testRuleset())
}

func TestExtract_SingleToken(t *testing.T) {
	t.Parallel()

	got := testExtractor().Extract("My dog started to VOMIT this morning.")
	want := []Symptom{"vomiting"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_MultiWordPhrase(t *testing.T) {
	t.Parallel()

	e := testExtractor()

	// odd spacing and punctuation must not defeat phrase matching
	for _, text := range []string{
		"he keeps throwing up",
		"he keeps throwing  up!!!",
		"Throwing Up since breakfast",
	} {
		got := e.Extract(text)
		want := []Symptom{"vomiting"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Extract(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestExtract_NoMatch(t *testing.T) {
	t.Parallel()

	if got := testExtractor().Extract("happy and healthy all around"); len(got) != 0 {
		t.Errorf("Extract = %v, want none", got)
	}
}

func TestExtract_MultipleSortedDeduped(t *testing.T) {
	t.Parallel()

	got := testExtractor().Extract("vomit, vomiting, blood everywhere, and very tired")
	want := []Symptom{"bleeding", "lethargy", "vomiting"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_TokenBoundaries(t *testing.T) {
	t.Parallel()

	// "bloodhound" must not match the "blood" keyword: single-word keywords
	// match whole tokens only
	if got := testExtractor().Extract("our bloodhound is doing fine"); len(got) != 0 {
		t.Errorf("Extract = %v, want none", got)
	}
}
