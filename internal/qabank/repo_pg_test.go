package qabank

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &PGRepo{DB: db}, mock
}

func entryRowColumns() []string {
	return []string{"id", "question", "answer", "category", "tags", "created_at", "updated_at"}
}

func TestPGCreateEncodesTagsAsJSON(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	entry := Entry{
		ID:        "entry-1",
		Question:  "q",
		Answer:    "a",
		Category:  CategoryTechnical,
		Tags:      []string{"go", "sql"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO qa_bank").
		WithArgs("entry-1", "q", "a", "technical", []byte(`["go","sql"]`), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), entry)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID != entry.ID {
		t.Fatalf("expected stored entry back, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGCreateEncodesNilTagsAsEmptyArray(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	entry := Entry{ID: "entry-2", Question: "q", Answer: "a", Category: CategoryHR, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO qa_bank").
		WithArgs("entry-2", "q", "a", "hr", []byte(`[]`), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM qa_bank WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(entryRowColumns()))

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGListByCategoryDecodesTags(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(entryRowColumns()).
		AddRow("entry-1", "q1", "a1", "behavioral", `["star","teamwork"]`, now, now).
		AddRow("entry-2", "q2", "a2", "behavioral", nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM qa_bank WHERE category").
		WithArgs("behavioral").
		WillReturnRows(rows)

	entries, err := repo.ListByCategory(context.Background(), CategoryBehavioral)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if len(entries[0].Tags) != 2 || entries[0].Tags[0] != "star" {
		t.Fatalf("expected decoded tags, got %v", entries[0].Tags)
	}
	if entries[1].Tags == nil || len(entries[1].Tags) != 0 {
		t.Fatalf("expected empty tags for NULL column, got %v", entries[1].Tags)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGUpdateNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	entry := Entry{ID: "missing", Question: "q", Answer: "a", Category: CategoryTechnical, Tags: []string{}, UpdatedAt: now}

	mock.ExpectExec("UPDATE qa_bank").
		WithArgs("q", "a", "technical", []byte(`[]`), now, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), entry)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGDeleteReportsRowsRemoved(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM qa_bank").
		WithArgs("entry-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM qa_bank").
		WithArgs("entry-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Delete(context.Background(), "entry-1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Fatalf("expected first delete to remove a row")
	}

	removed, err = repo.Delete(context.Background(), "entry-1")
	if err != nil {
		t.Fatalf("Delete second: %v", err)
	}
	if removed {
		t.Fatalf("expected second delete to remove nothing")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
