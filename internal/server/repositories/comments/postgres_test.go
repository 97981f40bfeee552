package comments

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("c1", created)
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+comments\s*\(submission_id,\s*user_id,\s*body\).*RETURNING\s+id,\s*created_at`).
		WithArgs("s1", "u1", "Nice project!").
		WillReturnRows(rows)

	c, err := repo.Create(context.Background(), &models.Comment{SubmissionID: "s1", UserID: "u1", Body: "Nice project!"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID != "c1" || !c.CreatedAt.Equal(created) {
		t.Fatalf("unexpected comment: %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+comments`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Comment{SubmissionID: "s1", UserID: "u1", Body: "x"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestListBySubmission_OldestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	t1 := time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	rows := sqlmock.NewRows([]string{"id", "submission_id", "user_id", "body", "created_at"}).
		AddRow("c1", "s1", "u1", "first", t1).
		AddRow("c2", "s1", "u2", "second", t2)

	mock.ExpectQuery(`(?s)SELECT\s+id,\s*submission_id,\s*user_id,\s*body,\s*created_at\s+FROM\s+comments.*ORDER\s+BY\s+created_at\s+ASC`).
		WithArgs("s1").
		WillReturnRows(rows)

	got, err := repo.ListBySubmission(context.Background(), "s1")
	if err != nil {
		t.Fatalf("ListBySubmission error: %v", err)
	}
	if len(got) != 2 || got[0].Body != "first" || got[1].Body != "second" {
		t.Fatalf("unexpected comments: %+v", got)
	}
}

func TestListBySubmission_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "submission_id", "user_id", "body", "created_at"})
	mock.ExpectQuery(`FROM\s+comments`).
		WithArgs("s1").
		WillReturnRows(rows)

	got, err := repo.ListBySubmission(context.Background(), "s1")
	if err != nil {
		t.Fatalf("ListBySubmission error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no comments, got %d", len(got))
	}
}

func TestCountBySubmission(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(3)
	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+comments\s+WHERE\s+submission_id\s*=\s*\$1`).
		WithArgs("s1").
		WillReturnRows(rows)

	n, err := repo.CountBySubmission(context.Background(), "s1")
	if err != nil {
		t.Fatalf("CountBySubmission error: %v", err)
	}
	if n != 3 {
		t.Fatalf("want 3 comments, got %d", n)
	}
}
