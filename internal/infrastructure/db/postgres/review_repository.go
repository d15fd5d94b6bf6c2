package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	created := *review
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (id, game_id, user_id, rating, review_text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, created.ID, created.GameID, created.UserID, created.Rating, created.ReviewText).
		Scan(&created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	return &created, nil
}

// UpdateOwned mutates a review only when it belongs to userID. The ownership
// filter is part of the statement, so a row owned by someone else produces
// the same zero-row result as a missing one.
func (r *ReviewRepository) UpdateOwned(ctx context.Context, id, userID string, rating int, reviewText string) (*domain.Review, error) {
	var updated domain.Review
	err := r.db.QueryRowContext(ctx, `
		UPDATE reviews
		SET rating = $3, review_text = $4
		WHERE id = $1 AND user_id = $2
		RETURNING id, game_id, user_id, rating, review_text, created_at
	`, id, userID, rating, reviewText).
		Scan(&updated.ID, &updated.GameID, &updated.UserID, &updated.Rating, &updated.ReviewText, &updated.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("update review: %w", err)
	}

	return &updated, nil
}

func (r *ReviewRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM reviews WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) ListByGame(ctx context.Context, gameID string) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.game_id, r.user_id, u.username, r.rating, r.review_text, r.created_at
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.game_id = $1
		ORDER BY r.created_at
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reviews := []domain.Review{}
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.GameID, &review.UserID, &review.Username,
			&review.Rating, &review.ReviewText, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
