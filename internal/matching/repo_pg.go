package matching

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new result row.
func (r *PGRepo) Create(ctx context.Context, result Result) error {
	const query = `
INSERT INTO results (id, interview_id, interview_type, matches, data_completeness, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	matches, err := json.Marshal(result.Matches)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		result.ID,
		result.InterviewID,
		result.InterviewType,
		matches,
		result.DataCompleteness,
		result.CreatedAt,
	)
	return err
}

// LatestByInterview returns the most recent result row for the interview.
func (r *PGRepo) LatestByInterview(ctx context.Context, interviewID string) (Result, error) {
	const query = `
SELECT id, interview_id, interview_type, matches, data_completeness, created_at
FROM results
WHERE interview_id = $1
ORDER BY created_at DESC
LIMIT 1`
	var result Result
	var matches []byte
	err := r.DB.QueryRowContext(ctx, query, interviewID).Scan(
		&result.ID,
		&result.InterviewID,
		&result.InterviewType,
		&matches,
		&result.DataCompleteness,
		&result.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, ErrNoResult
	}
	if err != nil {
		return Result{}, err
	}
	if err := json.Unmarshal(matches, &result.Matches); err != nil {
		return Result{}, err
	}
	return result, nil
}
