package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

func TestCommentRepository_ListByReview(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM comments c").
		WithArgs("rev1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "review_id", "user_id", "username", "comment_text", "created_at"},
		).
			AddRow("c1", "rev1", "u1", "user1", "nice", now).
			AddRow("c2", "rev1", "u2", "admin", "thanks", now))

	repo := NewCommentRepository(db)
	comments, err := repo.ListByReview(context.Background(), "rev1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Username != "user1" || comments[1].Username != "admin" {
		t.Fatalf("unexpected usernames: %+v", comments)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCommentRepository_DeleteOwned_FiltersOnAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs("c1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewCommentRepository(db)
	if err := repo.DeleteOwned(context.Background(), "c1", "intruder"); err != domain.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
