package ports

import (
	"context"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

// CommentRepository defines the interface for comment persistence.
// DeleteOwned follows the same ownership-filter contract as reviews.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	DeleteOwned(ctx context.Context, id, userID string) error
	ListByReview(ctx context.Context, reviewID string) ([]domain.Comment, error)
}
