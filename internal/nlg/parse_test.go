package nlg

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestParseNarrative(t *testing.T) {
	want := Narrative{
		Explanation: "Strong match for analytical thinkers.",
		Strengths:   []string{"analysis", "curiosity"},
		GrowthAreas: []string{"presenting"},
		Roadmap:     "Start with an online course.",
	}

	cases := []struct {
		name string
		raw  string
	}{
		{
			name: "clean_json",
			raw:  `{"explanation":"Strong match for analytical thinkers.","strengths":["analysis","curiosity"],"growthAreas":["presenting"],"roadmap":"Start with an online course."}`,
		},
		{
			name: "fenced_json",
			raw: "```json\n" +
				`{"explanation":"Strong match for analytical thinkers.","strengths":["analysis","curiosity"],"growthAreas":["presenting"],"roadmap":"Start with an online course."}` +
				"\n```",
		},
		{
			name: "json_with_prose",
			raw: "Here is the result you asked for:\n" +
				`{"explanation":"Strong match for analytical thinkers.","strengths":["analysis","curiosity"],"growthAreas":["presenting"],"roadmap":"Start with an online course."}` +
				"\nLet me know if you need anything else.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseNarrative(tc.raw)
			if err != nil {
				t.Fatalf("ParseNarrative: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("narrative mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestParseNarrativeTolerantOfMissingLists(t *testing.T) {
	got, err := ParseNarrative(`{"explanation":"Fits."}`)
	if err != nil {
		t.Fatalf("ParseNarrative: %v", err)
	}
	if got.Explanation != "Fits." {
		t.Fatalf("explanation: got %q", got.Explanation)
	}
	if got.Strengths != nil || got.GrowthAreas != nil {
		t.Fatalf("absent lists should stay nil: %+v", got)
	}
}

func TestParseNarrativeFailures(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace", raw: "   \n\t"},
		{name: "no_json", raw: "I could not produce a result."},
		{name: "truncated_json", raw: `{"explanation":"Fits.`},
		{name: "missing_explanation", raw: `{"strengths":["analysis"],"roadmap":"Read."}`},
		{name: "empty_explanation", raw: `{"explanation":"   "}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseNarrative(tc.raw); err == nil {
				t.Fatalf("expected parse failure for %q", tc.raw)
			}
		})
	}
}

func TestPlaceholderClientReportsNotConfigured(t *testing.T) {
	client := PlaceholderClient{}
	_, err := client.Generate(context.Background(), Prompt{CareerName: "Data Analyst", FitScore: 74})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
