package fairs

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fairhub/internal/common"
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

func TestGetByID_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "judge_id", "title", "subtitle", "about", "deadline",
		"requirements", "prices", "judging_criteria", "image_url", "created_at"}).
		AddRow("f1", "judge1", "Spring Fair", "Regional round", "About text", deadline,
			"Bring a poster", "Gift cards", "Originality", "https://img/fair.png", created)

	mock.ExpectQuery(`SELECT\s+id,\s*judge_id,\s*title,.*FROM\s+fairs\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("f1").
		WillReturnRows(rows)

	f, err := repo.GetByID(context.Background(), "f1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if f.JudgeID != "judge1" || f.Title != "Spring Fair" || !f.Deadline.Equal(deadline) {
		t.Fatalf("unexpected fair: %+v", f)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByID_NullDeadline(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "judge_id", "title", "subtitle", "about", "deadline",
		"requirements", "prices", "judging_criteria", "image_url", "created_at"}).
		AddRow("f1", "judge1", "Spring Fair", "", "", nil, "", "", "", "", created)

	mock.ExpectQuery(`FROM\s+fairs\s+WHERE\s+id`).
		WithArgs("f1").
		WillReturnRows(rows)

	f, err := repo.GetByID(context.Background(), "f1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if !f.Deadline.IsZero() {
		t.Fatalf("expected zero deadline, got %v", f.Deadline)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+fairs\s+WHERE\s+id`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE\s+fairs\s+SET\s+title\s*=\s*\$2`).
		WithArgs("f1", "New title", "New subtitle", "New about", deadline,
			"Reqs", "Prizes", "Criteria", "https://img/new.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	fair := &models.Fair{
		ID: "f1", Title: "New title", Subtitle: "New subtitle", About: "New about",
		Deadline: deadline, Requirements: "Reqs", Prices: "Prizes",
		JudgingCriteria: "Criteria", ImageURL: "https://img/new.png",
	}
	if err := repo.Update(context.Background(), fair); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+fairs`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Fair{ID: "missing"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestUpdate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+fairs`).
		WillReturnError(errors.New("db down"))

	err := repo.Update(context.Background(), &models.Fair{ID: "f1"})
	if err == nil || errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
