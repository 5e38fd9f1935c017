package matching

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/interviews"
	"careerpath-backend/internal/nlg"
)

func completedInterview(t *testing.T, repo *interviews.MemoryRepo, interviewType string) interviews.Interview {
	t.Helper()
	now := time.Now().UTC()
	interview := interviews.Interview{
		ID:     "interview-1",
		UserID: "user-1",
		Type:   interviewType,
		Status: interviews.StatusCompleted,
		Personality: map[string]interviews.Answer{
			"a1_personality_traits": {Value: []any{"analytical", "big_picture"}, QuestionID: "sf_p_traits", AnsweredAt: now},
			"a1_risk_tolerance":     {Value: float64(8), QuestionID: "sf_p_risk", AnsweredAt: now},
		},
		Talents: map[string]interviews.Answer{
			"a2_skills": {Value: []any{"problem_solving", "mathematics"}, QuestionID: "sf_t_skills", AnsweredAt: now},
		},
		StartedAt:      now.Add(-time.Hour),
		CompletedAt:    &now,
		LastActivityAt: now,
	}
	if err := repo.Create(context.Background(), interview); err != nil {
		t.Fatalf("seed interview: %v", err)
	}
	return interview
}

func newTestService(interviewRepo *interviews.MemoryRepo, resultRepo *MemoryRepo, client nlg.Client) *Service {
	return &Service{
		Results:    resultRepo,
		Interviews: interviewRepo,
		Careers:    careers.NewMemoryRepo(),
		Explainer:  &Explainer{NLG: client},
	}
}

func TestGetOrComputeGeneratesOnMiss(t *testing.T) {
	interviewRepo := interviews.NewMemoryRepo()
	resultRepo := NewMemoryRepo()
	client := &fakeNLG{narrative: nlg.Narrative{
		Explanation: "Fits well.",
		Strengths:   []string{"s"},
		GrowthAreas: []string{"g"},
		Roadmap:     "r",
	}}
	svc := newTestService(interviewRepo, resultRepo, client)
	completedInterview(t, interviewRepo, interviews.TypeLite)

	result, err := svc.GetOrCompute(context.Background(), "interview-1")
	if err != nil {
		t.Fatalf("GetOrCompute: %v", err)
	}
	if len(result.Matches) != 2 {
		t.Fatalf("lite interviews keep top 2, got %d matches", len(result.Matches))
	}
	if client.calls != 2 {
		t.Fatalf("expected one generation call per selected career, got %d", client.calls)
	}
	if result.InterviewType != interviews.TypeLite {
		t.Fatalf("unexpected interview type: %q", result.InterviewType)
	}
	for i := 1; i < len(result.Matches); i++ {
		if result.Matches[i-1].Score < result.Matches[i].Score {
			t.Fatalf("matches not sorted descending: %+v", result.Matches)
		}
	}
	if resultRepo.CountByInterview("interview-1") != 1 {
		t.Fatalf("expected exactly one persisted result row")
	}
}

func TestGetOrComputeServesCacheWithoutGeneration(t *testing.T) {
	interviewRepo := interviews.NewMemoryRepo()
	resultRepo := NewMemoryRepo()
	client := &fakeNLG{narrative: nlg.Narrative{Explanation: "Fits well."}}
	svc := newTestService(interviewRepo, resultRepo, client)
	completedInterview(t, interviewRepo, interviews.TypeLite)

	first, err := svc.GetOrCompute(context.Background(), "interview-1")
	if err != nil {
		t.Fatalf("first GetOrCompute: %v", err)
	}
	callsAfterFirst := client.calls

	second, err := svc.GetOrCompute(context.Background(), "interview-1")
	if err != nil {
		t.Fatalf("second GetOrCompute: %v", err)
	}
	if client.calls != callsAfterFirst {
		t.Fatalf("cache hit must not call the generator: %d -> %d", callsAfterFirst, client.calls)
	}
	if !reflect.DeepEqual(first.Matches, second.Matches) {
		t.Fatalf("cached matches differ from generated matches")
	}
	if resultRepo.CountByInterview("interview-1") != 1 {
		t.Fatalf("second call must not persist another row")
	}
}

func TestGetOrComputeRequiresExistingInterview(t *testing.T) {
	svc := newTestService(interviews.NewMemoryRepo(), NewMemoryRepo(), &fakeNLG{})

	_, err := svc.GetOrCompute(context.Background(), "missing")
	if !errors.Is(err, ErrInterviewNotFound) {
		t.Fatalf("expected ErrInterviewNotFound, got %v", err)
	}
}

func TestGetOrComputeRequiresCompletedInterview(t *testing.T) {
	interviewRepo := interviews.NewMemoryRepo()
	now := time.Now().UTC()
	if err := interviewRepo.Create(context.Background(), interviews.Interview{
		ID:             "interview-2",
		UserID:         "user-1",
		Type:           interviews.TypeLite,
		Status:         interviews.StatusInProgress,
		StartedAt:      now,
		LastActivityAt: now,
	}); err != nil {
		t.Fatalf("seed interview: %v", err)
	}
	svc := newTestService(interviewRepo, NewMemoryRepo(), &fakeNLG{})

	_, err := svc.GetOrCompute(context.Background(), "interview-2")
	if !errors.Is(err, ErrInterviewNotCompleted) {
		t.Fatalf("expected ErrInterviewNotCompleted, got %v", err)
	}
}

func TestGetOrComputeDeepKeepsTopFive(t *testing.T) {
	interviewRepo := interviews.NewMemoryRepo()
	client := &fakeNLG{narrative: nlg.Narrative{Explanation: "Fits well."}}
	svc := newTestService(interviewRepo, NewMemoryRepo(), client)
	completedInterview(t, interviewRepo, interviews.TypeDeep)

	result, err := svc.GetOrCompute(context.Background(), "interview-1")
	if err != nil {
		t.Fatalf("GetOrCompute: %v", err)
	}
	if len(result.Matches) != 5 {
		t.Fatalf("deep interviews keep top 5, got %d", len(result.Matches))
	}
	if client.calls != 5 {
		t.Fatalf("expected 5 generation calls, got %d", client.calls)
	}
}

// slowNLG delays some responses so completion order differs from rank order.
type slowNLG struct {
	delays map[string]time.Duration
}

func (s *slowNLG) Generate(ctx context.Context, prompt nlg.Prompt) (nlg.Narrative, error) {
	if d, ok := s.delays[prompt.CareerName]; ok {
		time.Sleep(d)
	}
	return nlg.Narrative{Explanation: "About " + prompt.CareerName}, nil
}

func TestGetOrComputePreservesRankedOrderUnderConcurrency(t *testing.T) {
	interviewRepo := interviews.NewMemoryRepo()
	catalog := careers.DefaultCatalog()
	delays := map[string]time.Duration{}
	for i, career := range catalog {
		// Earlier-ranked careers respond slower than later ones.
		delays[career.Name] = time.Duration(len(catalog)-i) * 5 * time.Millisecond
	}
	svc := newTestService(interviewRepo, NewMemoryRepo(), &slowNLG{delays: delays})
	completedInterview(t, interviewRepo, interviews.TypeDeep)

	result, err := svc.GetOrCompute(context.Background(), "interview-1")
	if err != nil {
		t.Fatalf("GetOrCompute: %v", err)
	}
	for _, match := range result.Matches {
		if match.Explanation != "About "+match.Title {
			t.Fatalf("match %q carries narrative for a different career: %q", match.Title, match.Explanation)
		}
	}
	for i := 1; i < len(result.Matches); i++ {
		if result.Matches[i-1].Score < result.Matches[i].Score {
			t.Fatalf("output order must follow rank, not completion: %+v", result.Matches)
		}
	}
}

func TestGetOrComputeSurvivesGeneratorOutage(t *testing.T) {
	interviewRepo := interviews.NewMemoryRepo()
	client := &fakeNLG{err: errors.New("network down")}
	svc := newTestService(interviewRepo, NewMemoryRepo(), client)
	completedInterview(t, interviewRepo, interviews.TypeLite)

	result, err := svc.GetOrCompute(context.Background(), "interview-1")
	if err != nil {
		t.Fatalf("generation outage must not fail the pipeline: %v", err)
	}
	for _, match := range result.Matches {
		if match.Explanation == "" || len(match.Strengths) == 0 {
			t.Fatalf("fallback narrative missing on match %q", match.Title)
		}
	}
}
