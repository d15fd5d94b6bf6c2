package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	created := *comment
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO comments (id, review_id, user_id, comment_text)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, created.ID, created.ReviewID, created.UserID, created.CommentText).
		Scan(&created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	return &created, nil
}

// DeleteOwned removes a comment only when it belongs to userID; zero rows
// means not found, whether the row is absent or owned by someone else.
func (r *CommentRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM comments WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) ListByReview(ctx context.Context, reviewID string) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.review_id, c.user_id, u.username, c.comment_text, c.created_at
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.review_id = $1
		ORDER BY c.created_at
	`, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(&comment.ID, &comment.ReviewID, &comment.UserID, &comment.Username,
			&comment.CommentText, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}
