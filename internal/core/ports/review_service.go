package ports

import (
	"context"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

type CreateReviewInput struct {
	GameID     string
	UserID     string
	Rating     int
	ReviewText string
}

type UpdateReviewInput struct {
	ID         string
	UserID     string
	Rating     int
	ReviewText string
}

type ReviewService interface {
	Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	Update(ctx context.Context, in UpdateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, id, userID string) error
}
