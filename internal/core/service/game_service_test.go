package service

import (
	"context"
	"testing"

	"github.com/pixelrate/game-review-api/internal/core/domain"
	"github.com/pixelrate/game-review-api/internal/core/ports"
)

type stubGameRepo struct {
	games map[string]*domain.Game
}

func newStubGameRepo() *stubGameRepo {
	return &stubGameRepo{games: make(map[string]*domain.Game)}
}

func (r *stubGameRepo) List(_ context.Context) ([]domain.Game, error) {
	out := []domain.Game{}
	for _, g := range r.games {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGameRepo) FindByID(_ context.Context, id string) (*domain.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	out := *g
	return &out, nil
}

func (r *stubGameRepo) Create(_ context.Context, game *domain.Game) (*domain.Game, error) {
	clone := *game
	if clone.ID == "" {
		clone.ID = clone.Title
	}
	r.games[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubGameRepo) Update(_ context.Context, game *domain.Game) (*domain.Game, error) {
	if _, ok := r.games[game.ID]; !ok {
		return nil, domain.ErrGameNotFound
	}
	clone := *game
	r.games[game.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubGameRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.games[id]; !ok {
		return domain.ErrGameNotFound
	}
	delete(r.games, id)
	return nil
}

func TestGameService_Detail_UnknownIDIsNotAnError(t *testing.T) {
	svc := NewGameService(newStubGameRepo(), newStubReviewRepo())

	detail, err := svc.Detail(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if detail.Game != nil {
		t.Fatalf("expected nil game, got %+v", detail.Game)
	}
	if len(detail.Reviews) != 0 {
		t.Fatalf("expected no reviews, got %d", len(detail.Reviews))
	}
}

func TestGameService_Detail_IncludesReviews(t *testing.T) {
	games := newStubGameRepo()
	reviews := newStubReviewRepo()
	svc := NewGameService(games, reviews)

	game, err := svc.Create(context.Background(), ports.CreateGameInput{
		Title:      "Game One",
		CategoryID: "c1",
		OwnerID:    "admin1",
	})
	if err != nil {
		t.Fatalf("create game failed: %v", err)
	}
	if game.OwnerID != "admin1" {
		t.Fatalf("expected owner admin1, got %s", game.OwnerID)
	}

	_, _ = reviews.Create(context.Background(), &domain.Review{GameID: game.ID, UserID: "u1", Rating: 5})
	_, _ = reviews.Create(context.Background(), &domain.Review{GameID: "other", UserID: "u2", Rating: 1})

	detail, err := svc.Detail(context.Background(), game.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if detail.Game == nil || detail.Game.ID != game.ID {
		t.Fatalf("unexpected game: %+v", detail.Game)
	}
	if len(detail.Reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(detail.Reviews))
	}
}

func TestGameService_Delete_Unknown(t *testing.T) {
	svc := NewGameService(newStubGameRepo(), newStubReviewRepo())

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrGameNotFound {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}
