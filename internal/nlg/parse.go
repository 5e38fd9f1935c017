package nlg

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseNarrative extracts a Narrative from raw model output. Models
// occasionally wrap the JSON in code fences or extra prose, so parsing is
// lenient: the first JSON object found wins, and only a missing explanation
// is treated as a hard failure.
func ParseNarrative(raw string) (Narrative, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return Narrative{}, fmt.Errorf("empty generation response")
	}
	if !gjson.Valid(cleaned) {
		start := strings.Index(cleaned, "{")
		end := strings.LastIndex(cleaned, "}")
		if start < 0 || end <= start {
			return Narrative{}, fmt.Errorf("no JSON object in generation response")
		}
		cleaned = cleaned[start : end+1]
		if !gjson.Valid(cleaned) {
			return Narrative{}, fmt.Errorf("malformed JSON in generation response")
		}
	}

	narrative := Narrative{
		Explanation: strings.TrimSpace(gjson.Get(cleaned, "explanation").String()),
		Roadmap:     strings.TrimSpace(gjson.Get(cleaned, "roadmap").String()),
		Strengths:   stringList(gjson.Get(cleaned, "strengths")),
		GrowthAreas: stringList(gjson.Get(cleaned, "growthAreas")),
	}
	if narrative.Explanation == "" {
		return Narrative{}, fmt.Errorf("generation response missing explanation")
	}
	return narrative, nil
}

func stringList(result gjson.Result) []string {
	if !result.IsArray() {
		return nil
	}
	var out []string
	result.ForEach(func(_, value gjson.Result) bool {
		if s := strings.TrimSpace(value.String()); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}

func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
