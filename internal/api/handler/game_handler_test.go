package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pixelrate/game-review-api/internal/api/handler"
	"github.com/pixelrate/game-review-api/internal/core/domain"
	"github.com/pixelrate/game-review-api/internal/core/ports"
)

type stubGameService struct {
	listFn   func(ctx context.Context) ([]domain.Game, error)
	detailFn func(ctx context.Context, id string) (*ports.GameDetail, error)
	createFn func(ctx context.Context, in ports.CreateGameInput) (*domain.Game, error)
	updateFn func(ctx context.Context, in ports.UpdateGameInput) (*domain.Game, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubGameService) List(ctx context.Context) ([]domain.Game, error) {
	return s.listFn(ctx)
}

func (s *stubGameService) Detail(ctx context.Context, id string) (*ports.GameDetail, error) {
	return s.detailFn(ctx, id)
}

func (s *stubGameService) Create(ctx context.Context, in ports.CreateGameInput) (*domain.Game, error) {
	return s.createFn(ctx, in)
}

func (s *stubGameService) Update(ctx context.Context, in ports.UpdateGameInput) (*domain.Game, error) {
	return s.updateFn(ctx, in)
}

func (s *stubGameService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubCategoryService struct {
	listFn func(ctx context.Context) ([]domain.Category, error)
}

func (s *stubCategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.listFn(ctx)
}

func TestGameHandler_List(t *testing.T) {
	e := newTestEcho()
	avg := 4.5
	stub := &stubGameService{
		listFn: func(ctx context.Context) ([]domain.Game, error) {
			return []domain.Game{
				{ID: "g1", Title: "Game One", AverageRating: &avg},
				{ID: "g2", Title: "Game Two"},
			}, nil
		},
	}
	h := handler.NewGameHandler(stub, &stubCategoryService{})

	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 games, got %d", len(resp))
	}
	if resp[0]["average_rating"] != 4.5 {
		t.Fatalf("expected average_rating 4.5, got %v", resp[0]["average_rating"])
	}
	if resp[1]["average_rating"] != nil {
		t.Fatalf("expected null average_rating, got %v", resp[1]["average_rating"])
	}
}

func TestGameHandler_Get_UnknownIDReturnsNullGame(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		detailFn: func(ctx context.Context, id string) (*ports.GameDetail, error) {
			return &ports.GameDetail{Game: nil, Reviews: []domain.Review{}}, nil
		},
	}
	h := handler.NewGameHandler(stub, &stubCategoryService{})

	req := httptest.NewRequest(http.MethodGet, "/api/games/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["game"] != nil {
		t.Fatalf("expected null game, got %v", resp["game"])
	}
	reviews, ok := resp["reviews"].([]any)
	if !ok || len(reviews) != 0 {
		t.Fatalf("expected empty reviews, got %v", resp["reviews"])
	}
}

func TestGameHandler_Create_OwnerFromPrincipal(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		createFn: func(ctx context.Context, in ports.CreateGameInput) (*domain.Game, error) {
			if in.OwnerID != "admin1" {
				t.Fatalf("expected owner admin1, got %s", in.OwnerID)
			}
			return &domain.Game{ID: "g1", Title: in.Title, OwnerID: in.OwnerID}, nil
		},
	}
	h := handler.NewGameHandler(stub, &stubCategoryService{})

	body := strings.NewReader(`{"title":"Game One","category_id":"c1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/games", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.Principal{ID: "admin1", Role: domain.RoleAdmin})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestGameHandler_Delete_Unknown(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrGameNotFound
		},
	}
	h := handler.NewGameHandler(stub, &stubCategoryService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/games/missing", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.Principal{ID: "admin1", Role: domain.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGameHandler_ListCategories(t *testing.T) {
	e := newTestEcho()
	categories := &stubCategoryService{
		listFn: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{{ID: "c1", Name: "Action"}}, nil
		},
	}
	h := handler.NewGameHandler(&stubGameService{}, categories)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListCategories(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Action") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
