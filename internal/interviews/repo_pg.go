package interviews

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

// Create inserts a new interview.
func (r *PGRepo) Create(ctx context.Context, interview Interview) error {
	const query = `
INSERT INTO interviews (
	id, user_id, type, status, current_module, current_question,
	personality, talents, values_answers, session_answers,
	started_at, completed_at, last_activity_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	personality, talents, values, session, err := marshalBuckets(interview)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		interview.ID,
		interview.UserID,
		interview.Type,
		interview.Status,
		interview.CurrentModule,
		interview.CurrentQuestion,
		personality,
		talents,
		values,
		session,
		interview.StartedAt,
		interview.CompletedAt,
		interview.LastActivityAt,
	)
	return err
}

// GetByID returns an interview by ID.
func (r *PGRepo) GetByID(ctx context.Context, interviewID string) (Interview, error) {
	const query = `
SELECT id, user_id, type, status, current_module, current_question,
       personality, talents, values_answers, session_answers,
       started_at, completed_at, last_activity_at
FROM interviews
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, interviewID)
	interview, err := scanInterview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Interview{}, ErrNotFound
	}
	return interview, err
}

// Update replaces the interview row.
func (r *PGRepo) Update(ctx context.Context, interview Interview) error {
	const query = `
UPDATE interviews
SET status = $2, current_module = $3, current_question = $4,
    personality = $5, talents = $6, values_answers = $7, session_answers = $8,
    type = $9, completed_at = $10, last_activity_at = $11
WHERE id = $1`
	personality, talents, values, session, err := marshalBuckets(interview)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		interview.ID,
		interview.Status,
		interview.CurrentModule,
		interview.CurrentQuestion,
		personality,
		talents,
		values,
		session,
		interview.Type,
		interview.CompletedAt,
		interview.LastActivityAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return ErrNotFound
	}
	return err
}

// ListByUser returns a user's interviews, newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Interview, error) {
	const query = `
SELECT id, user_id, type, status, current_module, current_question,
       personality, talents, values_answers, session_answers,
       started_at, completed_at, last_activity_at
FROM interviews
WHERE user_id = $1
ORDER BY started_at DESC
LIMIT $2 OFFSET $3`
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Interview
	for rows.Next() {
		interview, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, interview)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInterview(row rowScanner) (Interview, error) {
	var interview Interview
	var personality, talents, values, session sql.NullString
	var completedAt sql.NullTime
	if err := row.Scan(
		&interview.ID,
		&interview.UserID,
		&interview.Type,
		&interview.Status,
		&interview.CurrentModule,
		&interview.CurrentQuestion,
		&personality,
		&talents,
		&values,
		&session,
		&interview.StartedAt,
		&completedAt,
		&interview.LastActivityAt,
	); err != nil {
		return Interview{}, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		interview.CompletedAt = &t
	}
	var err error
	if interview.Personality, err = unmarshalBucket(personality); err != nil {
		return Interview{}, err
	}
	if interview.Talents, err = unmarshalBucket(talents); err != nil {
		return Interview{}, err
	}
	if interview.Values, err = unmarshalBucket(values); err != nil {
		return Interview{}, err
	}
	if interview.Session, err = unmarshalBucket(session); err != nil {
		return Interview{}, err
	}
	return interview, nil
}

func marshalBuckets(interview Interview) (personality, talents, values, session []byte, err error) {
	if personality, err = marshalBucket(interview.Personality); err != nil {
		return
	}
	if talents, err = marshalBucket(interview.Talents); err != nil {
		return
	}
	if values, err = marshalBucket(interview.Values); err != nil {
		return
	}
	session, err = marshalBucket(interview.Session)
	return
}

func marshalBucket(bucket map[string]Answer) ([]byte, error) {
	if bucket == nil {
		bucket = map[string]Answer{}
	}
	return json.Marshal(bucket)
}

func unmarshalBucket(raw sql.NullString) (map[string]Answer, error) {
	if !raw.Valid || raw.String == "" {
		return map[string]Answer{}, nil
	}
	var bucket map[string]Answer
	if err := json.Unmarshal([]byte(raw.String), &bucket); err != nil {
		return nil, err
	}
	return bucket, nil
}
