package matching

import (
	"context"
	"fmt"
	"strings"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/interviews"
	"careerpath-backend/internal/nlg"
	"careerpath-backend/internal/shared/metrics"
	"careerpath-backend/internal/shared/telemetry"
)

// Explainer produces the narrative portion of a career match. Generation
// failures never propagate: the deterministic fallback template takes over
// so the pipeline cannot fail on the external dependency.
type Explainer struct {
	NLG nlg.Client
}

// Explain generates the rationale for one scored career. A single generation
// attempt is made; any failure falls through to the fallback.
func (e *Explainer) Explain(ctx context.Context, career careers.Career, answers map[string]interviews.Answer, fitScore int, interviewType string) nlg.Narrative {
	client := e.NLG
	if client == nil {
		client = nlg.PlaceholderClient{}
	}

	prompt := nlg.Prompt{
		CareerName:        career.Name,
		CareerDescription: career.Description,
		UserContext:       summarizeAnswers(answers),
		FitScore:          fitScore,
	}
	narrative, err := client.Generate(ctx, prompt)
	if err != nil {
		metrics.IncNLGFallback()
		telemetry.Warn("nlg.fallback", map[string]any{
			"career_id": career.ID,
			"score":     fitScore,
			"error":     err.Error(),
		})
		return fallbackNarrative(career.Name, fitScore)
	}
	return narrative
}

// summarizeAnswers builds a compact user-context line from the signals the
// narrative cares about: personality traits, work-style indicators, risk
// tolerance, and learning style.
func summarizeAnswers(answers map[string]interviews.Answer) string {
	var parts []string
	if traits := answerList(answers, "a1_personality_traits"); len(traits) > 0 {
		parts = append(parts, "self-described as "+strings.Join(traits, ", "))
	}
	if env, ok := answerValue(answers, "a1_work_environment"); ok {
		if s, ok := env.(string); ok && s != "" {
			parts = append(parts, "prefers a "+s+" work environment")
		}
	}
	if collab, ok := answerValue(answers, "a1_collaboration"); ok {
		if s, ok := collab.(string); ok && s != "" {
			parts = append(parts, "works best "+s)
		}
	}
	if risk, ok := answerNumber(answers, "a1_risk_tolerance"); ok {
		parts = append(parts, fmt.Sprintf("risk tolerance %d of 10", int(risk)))
	}
	if style, ok := answerValue(answers, "a2_learning_style"); ok {
		if s, ok := style.(string); ok && s != "" {
			parts = append(parts, "learns best via "+s)
		}
	}
	if values := answerList(answers, "a3_core_values"); len(values) > 0 {
		parts = append(parts, "values "+strings.Join(values, ", "))
	}
	return strings.Join(parts, "; ")
}

// fallbackNarrative is the deterministic template used when generation is
// unavailable. Parameterized only by career name and score.
func fallbackNarrative(careerName string, fitScore int) nlg.Narrative {
	return nlg.Narrative{
		Explanation: fmt.Sprintf("Based on your assessment responses, %s scored %d out of 100 for you. Your answers suggest a solid alignment with the day-to-day demands of this path.", careerName, fitScore),
		Strengths: []string{
			"Your assessment profile aligns with the core demands of " + careerName,
			"You bring a consistent working style suited to this field",
		},
		GrowthAreas: []string{
			"Explore the specific tools and practices used in " + careerName,
			"Talk to practitioners to validate the fit",
		},
		Roadmap: fmt.Sprintf("Start by researching entry paths into %s, then build one small project or shadowing experience within the next three months.", careerName),
	}
}
