package service

import (
	"context"
	"errors"

	"github.com/pixelrate/game-review-api/internal/core/domain"
	"github.com/pixelrate/game-review-api/internal/core/ports"
)

// GameService implements catalog reads and admin catalog management.
type GameService struct {
	games   ports.GameRepository
	reviews ports.ReviewRepository
}

func NewGameService(games ports.GameRepository, reviews ports.ReviewRepository) *GameService {
	return &GameService{games: games, reviews: reviews}
}

func (s *GameService) List(ctx context.Context) ([]domain.Game, error) {
	return s.games.List(ctx)
}

// Detail returns the game with its reviews. An unknown id is not an error:
// the detail carries a nil game and an empty review list.
func (s *GameService) Detail(ctx context.Context, id string) (*ports.GameDetail, error) {
	game, err := s.games.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return &ports.GameDetail{Game: nil, Reviews: []domain.Review{}}, nil
		}
		return nil, err
	}

	reviews, err := s.reviews.ListByGame(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.GameDetail{Game: game, Reviews: reviews}, nil
}

func (s *GameService) Create(ctx context.Context, in ports.CreateGameInput) (*domain.Game, error) {
	game := &domain.Game{
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
		OwnerID:     in.OwnerID,
	}
	return s.games.Create(ctx, game)
}

func (s *GameService) Update(ctx context.Context, in ports.UpdateGameInput) (*domain.Game, error) {
	game := &domain.Game{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
	}
	return s.games.Update(ctx, game)
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	return s.games.Delete(ctx, id)
}

// CategoryService lists static reference data.
type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}
