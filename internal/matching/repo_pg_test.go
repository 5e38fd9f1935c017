package matching

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreatePersistsMatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	result := Result{
		ID:            "result-1",
		InterviewID:   "interview-1",
		InterviewType: "lite",
		Matches: []CareerMatch{
			{CareerID: "data_analyst", Title: "Data Analyst", Score: 72, Confidence: ConfidenceMedium},
		},
		DataCompleteness: 86,
		CreatedAt:        time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO results").
		WithArgs(
			result.ID,
			result.InterviewID,
			result.InterviewType,
			sqlmock.AnyArg(), // matches jsonb
			result.DataCompleteness,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), result); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoLatestByInterview(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "interview_id", "interview_type", "matches", "data_completeness", "created_at"}).
		AddRow("result-2", "interview-1", "deep", `[{"careerId":"ux_designer","title":"UX Designer","score":81,"confidence":"high"}]`, 92, createdAt)

	mock.ExpectQuery("SELECT id, interview_id, interview_type, matches, data_completeness, created_at").
		WithArgs("interview-1").
		WillReturnRows(rows)

	result, err := repo.LatestByInterview(context.Background(), "interview-1")
	if err != nil {
		t.Fatalf("LatestByInterview: %v", err)
	}
	if result.ID != "result-2" || len(result.Matches) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Matches[0].CareerID != "ux_designer" || result.Matches[0].Score != 81 {
		t.Fatalf("unexpected match row: %+v", result.Matches[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoLatestByInterviewNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, interview_id, interview_type, matches, data_completeness, created_at").
		WithArgs("interview-9").
		WillReturnRows(sqlmock.NewRows([]string{"id", "interview_id", "interview_type", "matches", "data_completeness", "created_at"}))

	if _, err := repo.LatestByInterview(context.Background(), "interview-9"); err != ErrNoResult {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
}
