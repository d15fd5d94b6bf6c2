package ports

import (
	"context"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

// GameRepository defines the interface for catalog persistence. List and
// FindByID return read-side projections (category name, average rating).
type GameRepository interface {
	List(ctx context.Context) ([]domain.Game, error)
	FindByID(ctx context.Context, id string) (*domain.Game, error)
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
	Update(ctx context.Context, game *domain.Game) (*domain.Game, error)
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for reference-data persistence.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
}
