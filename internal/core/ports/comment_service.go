package ports

import (
	"context"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

type CreateCommentInput struct {
	ReviewID    string
	UserID      string
	CommentText string
}

type CommentService interface {
	Create(ctx context.Context, in CreateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, id, userID string) error
	ListByReview(ctx context.Context, reviewID string) ([]domain.Comment, error)
}
