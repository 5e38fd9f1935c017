package matching

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/interviews"
	"careerpath-backend/internal/shared/metrics"
	"careerpath-backend/internal/shared/telemetry"
)

// Service is the result-cache layer over the scoring and explanation
// pipeline. The first request for a completed interview computes and
// persists a result; later requests serve the persisted row without any
// generation calls. Concurrent first requests may each compute and insert;
// the duplicate rows are harmless and reads always take the most recent.
type Service struct {
	Results    Repo
	Interviews interviews.Repo
	Careers    careers.Repo
	Explainer  *Explainer
}

// GetOrCompute returns the cached result for the interview, generating and
// persisting it on first request.
func (s *Service) GetOrCompute(ctx context.Context, interviewID string) (Result, error) {
	if interviewID == "" {
		return Result{}, errors.New("interviewID is required")
	}

	cached, err := s.Results.LatestByInterview(ctx, interviewID)
	if err == nil {
		metrics.IncResultCacheHit()
		return cached, nil
	}
	if !errors.Is(err, ErrNoResult) {
		return Result{}, err
	}

	interview, err := s.Interviews.GetByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, interviews.ErrNotFound) {
			return Result{}, ErrInterviewNotFound
		}
		return Result{}, err
	}
	if interview.Status != interviews.StatusCompleted {
		return Result{}, ErrInterviewNotCompleted
	}

	return s.generate(ctx, interview)
}

func (s *Service) generate(ctx context.Context, interview interviews.Interview) (Result, error) {
	started := time.Now()
	metrics.IncGenerationStarted()

	catalog, err := s.Careers.List(ctx)
	if err != nil {
		return Result{}, err
	}

	answers := interview.MergedAnswers()
	completeness := interview.Completeness()
	confidence := ConfidenceFor(interview.Type, completeness)

	ranked := Rank(answers, catalog, interview.Type)
	keep := SelectionCount(interview.Type)
	if keep > len(ranked) {
		keep = len(ranked)
	}
	selected := ranked[:keep]

	// Fan out one generation call per selected career. Each goroutine owns
	// its slice index, so the joined output keeps the ranked order.
	matches := make([]CareerMatch, len(selected))
	var wg sync.WaitGroup
	for i, entry := range selected {
		wg.Add(1)
		go func(i int, entry ScoredCareer) {
			defer wg.Done()
			narrative := s.Explainer.Explain(ctx, entry.Career, answers, entry.Score, interview.Type)
			matches[i] = CareerMatch{
				CareerID:    entry.Career.ID,
				Title:       entry.Career.Name,
				Category:    entry.Career.Category,
				Score:       entry.Score,
				Confidence:  confidence,
				Explanation: narrative.Explanation,
				Strengths:   narrative.Strengths,
				GrowthAreas: narrative.GrowthAreas,
				Roadmap:     narrative.Roadmap,
			}
		}(i, entry)
	}
	wg.Wait()

	result := Result{
		ID:               uuid.NewString(),
		InterviewID:      interview.ID,
		InterviewType:    interview.Type,
		Matches:          matches,
		DataCompleteness: completeness,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return Result{}, err
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(metrics.SinceMillis(started))
	telemetry.Info("matching.generated", map[string]any{
		"interview_id":      interview.ID,
		"interview_type":    interview.Type,
		"matches":           len(matches),
		"data_completeness": completeness,
		"duration_ms":       metrics.SinceMillis(started),
	})
	return result, nil
}
