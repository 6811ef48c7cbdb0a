package resumes

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGetByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "content", "filename", "file_url", "created_at", "updated_at"}).
		AddRow("resume-1", "user-1", "text", "cv.pdf", "http://files/user-1.pdf", now, now)
	mock.ExpectQuery("SELECT id, user_id, content, filename, file_url, created_at, updated_at").
		WithArgs("user-1").
		WillReturnRows(rows)

	res, ok, err := repo.GetByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if !ok {
		t.Fatal("expected resume to be found")
	}
	if res.ID != "resume-1" || res.Content != "text" {
		t.Fatalf("resume = %+v", res)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, user_id, content, filename, file_url, created_at, updated_at").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "filename", "file_url", "created_at", "updated_at"}))

	_, ok, err := repo.GetByUser(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if ok {
		t.Fatal("expected absent resume")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	created := now.Add(-time.Hour)

	// The database returns the preserved id and created_at of the prior row.
	rows := sqlmock.NewRows([]string{"id", "user_id", "content", "filename", "file_url", "created_at", "updated_at"}).
		AddRow("old-id", "user-1", "new text", "new.pdf", "http://files/user-1.pdf", created, now)
	mock.ExpectQuery("INSERT INTO resumes").
		WithArgs("new-id", "user-1", "new text", "new.pdf", "http://files/user-1.pdf", now, now).
		WillReturnRows(rows)

	out, err := repo.Upsert(context.Background(), Resume{
		ID:        "new-id",
		UserID:    "user-1",
		Content:   "new text",
		Filename:  "new.pdf",
		FileURL:   "http://files/user-1.pdf",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if out.ID != "old-id" {
		t.Fatalf("expected preserved id, got %s", out.ID)
	}
	if !out.CreatedAt.Equal(created) {
		t.Fatalf("expected preserved created_at")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByUser(context.Background(), "user-1"); err != nil {
		t.Fatalf("DeleteByUser: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
