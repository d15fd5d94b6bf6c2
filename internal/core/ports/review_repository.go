package ports

import (
	"context"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

// ReviewRepository defines the interface for review persistence.
//
// UpdateOwned and DeleteOwned filter on both id and author: when the row
// exists but belongs to another user the result is domain.ErrReviewNotFound,
// identical to a genuinely absent row.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	UpdateOwned(ctx context.Context, id, userID string, rating int, reviewText string) (*domain.Review, error)
	DeleteOwned(ctx context.Context, id, userID string) error
	ListByGame(ctx context.Context, gameID string) ([]domain.Review, error)
}
