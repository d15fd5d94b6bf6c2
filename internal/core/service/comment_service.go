package service

import (
	"context"
	"time"

	"github.com/pixelrate/game-review-api/internal/core/domain"
	"github.com/pixelrate/game-review-api/internal/core/ports"
)

// CommentService mirrors the review authorship rules for comments.
type CommentService struct {
	comments ports.CommentRepository
}

func NewCommentService(comments ports.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

func (s *CommentService) Create(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
	comment := &domain.Comment{
		ReviewID:    in.ReviewID,
		UserID:      in.UserID,
		CommentText: in.CommentText,
		CreatedAt:   time.Now().UTC(),
	}
	return s.comments.Create(ctx, comment)
}

func (s *CommentService) Delete(ctx context.Context, id, userID string) error {
	return s.comments.DeleteOwned(ctx, id, userID)
}

func (s *CommentService) ListByReview(ctx context.Context, reviewID string) ([]domain.Comment, error) {
	return s.comments.ListByReview(ctx, reviewID)
}
