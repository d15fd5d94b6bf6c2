package service

import (
	"context"
	"time"

	"github.com/pixelrate/game-review-api/internal/core/domain"
	"github.com/pixelrate/game-review-api/internal/core/ports"
)

// ReviewService enforces the authorship rules around reviews: the author is
// always the authenticated principal, and mutations only reach rows the
// caller owns.
type ReviewService struct {
	reviews ports.ReviewRepository
}

func NewReviewService(reviews ports.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

func (s *ReviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		GameID:     in.GameID,
		UserID:     in.UserID,
		Rating:     in.Rating,
		ReviewText: in.ReviewText,
		CreatedAt:  time.Now().UTC(),
	}
	return s.reviews.Create(ctx, review)
}

func (s *ReviewService) Update(ctx context.Context, in ports.UpdateReviewInput) (*domain.Review, error) {
	return s.reviews.UpdateOwned(ctx, in.ID, in.UserID, in.Rating, in.ReviewText)
}

func (s *ReviewService) Delete(ctx context.Context, id, userID string) error {
	return s.reviews.DeleteOwned(ctx, id, userID)
}
