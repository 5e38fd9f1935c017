package matching

import "errors"

var (
	// ErrInterviewNotFound is returned when results are requested for an
	// unknown interview.
	ErrInterviewNotFound = errors.New("interview not found")
	// ErrInterviewNotCompleted is returned when results are requested before
	// the interview is completed.
	ErrInterviewNotCompleted = errors.New("interview not completed")
	// ErrNoResult is returned by repos when no result row exists yet.
	ErrNoResult = errors.New("no result for interview")
)
