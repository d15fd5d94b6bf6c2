package ports

import (
	"context"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

// GameDetail is the aggregate returned for a single game page. Game is nil
// when the id is unknown; the endpoint still answers 200 with a null game.
type GameDetail struct {
	Game    *domain.Game    `json:"game"`
	Reviews []domain.Review `json:"reviews"`
}

type CreateGameInput struct {
	Title       string
	Description string
	CategoryID  string
	ImageURL    string
	OwnerID     string
}

type UpdateGameInput struct {
	ID          string
	Title       string
	Description string
	CategoryID  string
	ImageURL    string
}

type GameService interface {
	List(ctx context.Context) ([]domain.Game, error)
	Detail(ctx context.Context, id string) (*GameDetail, error)
	Create(ctx context.Context, in CreateGameInput) (*domain.Game, error)
	Update(ctx context.Context, in UpdateGameInput) (*domain.Game, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
}
