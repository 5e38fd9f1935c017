package careers

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

// List returns the catalog ordered by its seeded position.
func (r *PGRepo) List(ctx context.Context) ([]Career, error) {
	const query = `
SELECT id, name, description, requirements, category
FROM careers
ORDER BY position ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Career
	for rows.Next() {
		career, err := scanCareer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, career)
	}
	return out, rows.Err()
}

// GetByID returns a single career by id.
func (r *PGRepo) GetByID(ctx context.Context, careerID string) (Career, error) {
	const query = `
SELECT id, name, description, requirements, category
FROM careers
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, careerID)
	career, err := scanCareer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Career{}, ErrNotFound
	}
	return career, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCareer(row rowScanner) (Career, error) {
	var career Career
	var description sql.NullString
	var requirements sql.NullString
	var category sql.NullString
	if err := row.Scan(&career.ID, &career.Name, &description, &requirements, &category); err != nil {
		return Career{}, err
	}
	career.Description = description.String
	career.Category = category.String
	if requirements.Valid && requirements.String != "" {
		if err := json.Unmarshal([]byte(requirements.String), &career.Requirements); err != nil {
			return Career{}, err
		}
	}
	return career, nil
}
