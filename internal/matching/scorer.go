package matching

import (
	"math"
	"sort"
	"strings"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/interviews"
)

// Sub-score weights. Skills dominate, work style and values split the rest.
const (
	weightSkills    = 0.40
	weightWorkStyle = 0.30
	weightValues    = 0.30

	subScoreBaseline = 50.0
	deepBonusFactor  = 1.05
)

// Score computes the fit between an answer set and a career as an integer in
// [0,100]. It is a pure function: identical inputs always yield identical
// output, and missing answer keys simply fail their predicate.
func Score(answers map[string]interviews.Answer, career careers.Career, interviewType string) int {
	skills := clamp100(skillsSubScore(answers, career.Requirements))
	workStyle := clamp100(workStyleSubScore(answers, career.Requirements))
	values := clamp100(valuesSubScore(answers, career.Requirements))

	combined := skills*weightSkills + workStyle*weightWorkStyle + values*weightValues
	if interviewType == interviews.TypeDeep {
		combined *= deepBonusFactor
	}
	if combined > 100 {
		combined = 100
	}
	return int(math.Round(combined))
}

func skillsSubScore(answers map[string]interviews.Answer, req careers.Requirements) float64 {
	score := subScoreBaseline
	traits := answerList(answers, "a1_personality_traits")
	if containsToken(traits, "analytical") {
		score += 10
	}
	if containsToken(traits, "big_picture") {
		score += 5
	}
	if containsToken(traits, "detail_oriented") {
		score += 5
	}
	for _, trait := range req.Traits {
		if containsToken(traits, trait) {
			score += 6
		}
	}
	userSkills := answerList(answers, "a2_skills")
	for _, skill := range req.Skills {
		if containsToken(userSkills, skill) {
			score += 8
		}
	}
	if req.LearningStyle != "" && answerEquals(answers, "a2_learning_style", req.LearningStyle) {
		score += 10
	}
	return score
}

func workStyleSubScore(answers map[string]interviews.Answer, req careers.Requirements) float64 {
	score := subScoreBaseline
	if req.WorkEnvironment != "" && answerEquals(answers, "a1_work_environment", req.WorkEnvironment) {
		score += 15
	}
	if req.Collaboration != "" && answerEquals(answers, "a1_collaboration", req.Collaboration) {
		score += 10
	}
	if req.Structure != "" && answerEquals(answers, "a1_structure_preference", req.Structure) {
		score += 10
	}
	if pace, ok := answerNumber(answers, "a2_work_pace"); ok && pace >= 7 {
		score += 5
	}
	return score
}

func valuesSubScore(answers map[string]interviews.Answer, req careers.Requirements) float64 {
	score := subScoreBaseline
	risk, hasRisk := answerNumber(answers, "a1_risk_tolerance")
	if hasRisk && risk >= 7 {
		score += 10
	}
	if hasRisk && req.MinRiskTolerance > 0 && risk >= req.MinRiskTolerance {
		score += 8
	}
	userValues := answerList(answers, "a3_core_values")
	for _, value := range req.Values {
		if containsToken(userValues, value) {
			score += 8
		}
	}
	if balance, ok := answerNumber(answers, "a3_work_life_balance"); ok && balance >= 7 {
		score += 5
	}
	return score
}

func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

// Rank scores every career and returns them sorted descending by score.
// Equal scores keep the catalog's insertion order so output is reproducible
// for a fixed catalog.
func Rank(answers map[string]interviews.Answer, catalog []careers.Career, interviewType string) []ScoredCareer {
	scored := make([]ScoredCareer, 0, len(catalog))
	for _, career := range catalog {
		scored = append(scored, ScoredCareer{
			Career: career,
			Score:  Score(answers, career, interviewType),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// ScoredCareer pairs a catalog entry with its computed fit score.
type ScoredCareer struct {
	Career careers.Career
	Score  int
}

// SelectionCount returns how many ranked careers are kept for the type.
func SelectionCount(interviewType string) int {
	if interviewType == interviews.TypeLite {
		return 2
	}
	return 5
}

// ConfidenceFor derives the confidence tier from interview depth and data
// completeness. Lite interviews never reach high.
func ConfidenceFor(interviewType string, completeness int) string {
	if interviewType == interviews.TypeLite {
		if completeness > 80 {
			return ConfidenceMedium
		}
		return ConfidenceLow
	}
	if completeness > 80 {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}

func answerValue(answers map[string]interviews.Answer, key string) (any, bool) {
	entry, ok := answers[key]
	if !ok {
		return nil, false
	}
	return entry.Value, true
}

func answerEquals(answers map[string]interviews.Answer, key, expected string) bool {
	value, ok := answerValue(answers, key)
	if !ok {
		return false
	}
	s, ok := value.(string)
	return ok && strings.EqualFold(strings.TrimSpace(s), expected)
}

func answerNumber(answers map[string]interviews.Answer, key string) (float64, bool) {
	value, ok := answerValue(answers, key)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func answerList(answers map[string]interviews.Answer, key string) []string {
	value, ok := answerValue(answers, key)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}

func containsToken(list []string, token string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), token) {
			return true
		}
	}
	return false
}
