package interviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"careerpath-backend/internal/questions"
	"careerpath-backend/internal/shared/telemetry"
)

// Service contains business logic for the interview lifecycle and answer store.
type Service struct {
	Repo     Repo
	Resolver *questions.Resolver
}

// AnswerInput is a single submitted answer before canonicalization.
type AnswerInput struct {
	QuestionID string `json:"questionId"`
	ModuleID   string `json:"moduleId"`
	Answer     any    `json:"answer"`
	Position   int    `json:"position"`
}

// Start creates a new in-progress interview of the given type.
func (s *Service) Start(ctx context.Context, userID, interviewType string) (Interview, error) {
	if userID == "" {
		return Interview{}, errors.New("userID is required")
	}
	if interviewType == "" {
		interviewType = TypeLite
	}
	if interviewType == TypeLiteUpgraded {
		return Interview{}, fmt.Errorf("%w: interviews start as lite or deep", ErrValidation)
	}
	if !ValidType(interviewType) {
		return Interview{}, fmt.Errorf("%w: unknown interview type %q", ErrValidation, interviewType)
	}

	now := time.Now().UTC()
	interview := Interview{
		ID:             uuid.NewString(),
		UserID:         userID,
		Type:           interviewType,
		Status:         StatusInProgress,
		StartedAt:      now,
		LastActivityAt: now,
	}
	if err := s.Repo.Create(ctx, interview); err != nil {
		return Interview{}, err
	}
	telemetry.Info("interview.started", map[string]any{
		"interview_id": interview.ID,
		"user_id":      userID,
		"type":         interviewType,
	})
	return interview, nil
}

// Get returns an interview by ID.
func (s *Service) Get(ctx context.Context, interviewID string) (Interview, error) {
	if interviewID == "" {
		return Interview{}, errors.New("interviewID is required")
	}
	return s.Repo.GetByID(ctx, interviewID)
}

// List returns a user's interviews, newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Interview, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// SubmitAnswer canonicalizes and stores one answer, routing it to the bucket
// declared by the question's category. The position pointer and last-activity
// timestamp advance with every accepted answer.
func (s *Service) SubmitAnswer(ctx context.Context, interviewID string, input AnswerInput) (Interview, error) {
	if interviewID == "" {
		return Interview{}, errors.New("interviewID is required")
	}
	if input.QuestionID == "" {
		return Interview{}, fmt.Errorf("%w: questionId is required", ErrValidation)
	}
	if err := validateAnswerValue(input.Answer); err != nil {
		return Interview{}, err
	}

	interview, err := s.Repo.GetByID(ctx, interviewID)
	if err != nil {
		return Interview{}, err
	}
	if interview.Status != StatusInProgress {
		return Interview{}, fmt.Errorf("%w: cannot answer a %s interview", ErrInvalidTransition, interview.Status)
	}

	entry := s.Resolver.Resolve(input.QuestionID)
	now := time.Now().UTC()
	bucket := interview.Bucket(entry.Bucket)
	bucket[entry.Key] = Answer{
		Value:      input.Answer,
		QuestionID: input.QuestionID,
		ModuleID:   input.ModuleID,
		Category:   string(entry.Bucket),
		AnsweredAt: now,
	}
	if input.ModuleID != "" {
		interview.CurrentModule = input.ModuleID
	}
	if input.Position > 0 {
		interview.CurrentQuestion = input.Position
	} else {
		interview.CurrentQuestion++
	}
	interview.LastActivityAt = now

	if err := s.Repo.Update(ctx, interview); err != nil {
		return Interview{}, err
	}
	return interview, nil
}

// Complete transitions an in-progress interview to completed.
func (s *Service) Complete(ctx context.Context, interviewID string) (Interview, error) {
	return s.transition(ctx, interviewID, StatusCompleted)
}

// Abandon transitions an in-progress interview to abandoned.
func (s *Service) Abandon(ctx context.Context, interviewID string) (Interview, error) {
	return s.transition(ctx, interviewID, StatusAbandoned)
}

// Upgrade moves an in-progress lite interview to lite_upgraded so the
// long-form modules can be appended to it.
func (s *Service) Upgrade(ctx context.Context, interviewID string) (Interview, error) {
	if interviewID == "" {
		return Interview{}, errors.New("interviewID is required")
	}
	interview, err := s.Repo.GetByID(ctx, interviewID)
	if err != nil {
		return Interview{}, err
	}
	if interview.Status != StatusInProgress {
		return Interview{}, fmt.Errorf("%w: cannot upgrade a %s interview", ErrInvalidTransition, interview.Status)
	}
	if interview.Type != TypeLite {
		return Interview{}, fmt.Errorf("%w: only lite interviews can upgrade", ErrInvalidTransition)
	}
	interview.Type = TypeLiteUpgraded
	interview.LastActivityAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, interview); err != nil {
		return Interview{}, err
	}
	telemetry.Info("interview.upgraded", map[string]any{
		"interview_id": interview.ID,
		"user_id":      interview.UserID,
	})
	return interview, nil
}

func (s *Service) transition(ctx context.Context, interviewID, target string) (Interview, error) {
	if interviewID == "" {
		return Interview{}, errors.New("interviewID is required")
	}
	interview, err := s.Repo.GetByID(ctx, interviewID)
	if err != nil {
		return Interview{}, err
	}
	if interview.Status != StatusInProgress {
		return Interview{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, interview.Status, target)
	}
	now := time.Now().UTC()
	interview.Status = target
	interview.LastActivityAt = now
	if target == StatusCompleted {
		interview.CompletedAt = &now
	}
	if err := s.Repo.Update(ctx, interview); err != nil {
		return Interview{}, err
	}
	telemetry.Info("interview.status", map[string]any{
		"interview_id":      interview.ID,
		"user_id":           interview.UserID,
		"status":            target,
		"status_transition": StatusInProgress + "->" + target,
	})
	return interview, nil
}

// validateAnswerValue rejects payload shapes the scorer cannot consume.
// Accepted: string, bool, number, or a list of strings.
func validateAnswerValue(value any) error {
	switch v := value.(type) {
	case nil:
		return fmt.Errorf("%w: answer is required", ErrValidation)
	case string, bool, float64, int, int64:
		return nil
	case []any:
		for _, item := range v {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("%w: list answers must contain only strings", ErrValidation)
			}
		}
		return nil
	case []string:
		return nil
	default:
		return fmt.Errorf("%w: unsupported answer type %T", ErrValidation, value)
	}
}
