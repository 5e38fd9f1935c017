package matching

import (
	"context"
	"errors"
	"strings"
	"testing"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/nlg"
)

type fakeNLG struct {
	narrative nlg.Narrative
	err       error
	calls     int
}

func (f *fakeNLG) Generate(ctx context.Context, prompt nlg.Prompt) (nlg.Narrative, error) {
	f.calls++
	if f.err != nil {
		return nlg.Narrative{}, f.err
	}
	return f.narrative, nil
}

func TestExplainUsesGeneratedNarrative(t *testing.T) {
	client := &fakeNLG{narrative: nlg.Narrative{
		Explanation: "Strong analytical profile.",
		Strengths:   []string{"analysis"},
		GrowthAreas: []string{"public speaking"},
		Roadmap:     "Take an intro course.",
	}}
	explainer := &Explainer{NLG: client}

	career := careers.Career{ID: "data_analyst", Name: "Data Analyst"}
	narrative := explainer.Explain(context.Background(), career, nil, 78, "lite")

	if narrative.Explanation != "Strong analytical profile." {
		t.Fatalf("unexpected explanation: %q", narrative.Explanation)
	}
	if client.calls != 1 {
		t.Fatalf("expected exactly one generation call, got %d", client.calls)
	}
}

func TestExplainFallsBackOnFailure(t *testing.T) {
	client := &fakeNLG{err: errors.New("upstream unavailable")}
	explainer := &Explainer{NLG: client}

	career := careers.Career{ID: "ux_designer", Name: "UX Designer"}
	narrative := explainer.Explain(context.Background(), career, nil, 63, "deep")

	if narrative.Explanation == "" || narrative.Roadmap == "" {
		t.Fatalf("fallback narrative must be non-empty: %+v", narrative)
	}
	if len(narrative.Strengths) == 0 || len(narrative.GrowthAreas) == 0 {
		t.Fatalf("fallback lists must be non-empty: %+v", narrative)
	}
	if !strings.Contains(narrative.Explanation, "UX Designer") || !strings.Contains(narrative.Explanation, "63") {
		t.Fatalf("fallback must be parameterized by career name and score: %q", narrative.Explanation)
	}
	if client.calls != 1 {
		t.Fatalf("expected a single attempt with no retry, got %d", client.calls)
	}
}

func TestExplainFallbackIsDeterministic(t *testing.T) {
	first := fallbackNarrative("Financial Advisor", 71)
	second := fallbackNarrative("Financial Advisor", 71)
	if first.Explanation != second.Explanation || first.Roadmap != second.Roadmap {
		t.Fatalf("fallback narrative must be deterministic")
	}
}

func TestSummarizeAnswersMentionsSignals(t *testing.T) {
	answers := answersFrom(map[string]any{
		"a1_personality_traits": []any{"analytical"},
		"a1_risk_tolerance":     float64(8),
		"a2_learning_style":     "hands_on",
	})
	summary := summarizeAnswers(answers)
	for _, want := range []string{"analytical", "risk tolerance 8", "hands_on"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q: %q", want, summary)
		}
	}
}
