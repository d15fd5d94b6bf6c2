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

type stubCommentService struct {
	createFn func(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error)
	deleteFn func(ctx context.Context, id, userID string) error
	listFn   func(ctx context.Context, reviewID string) ([]domain.Comment, error)
}

func (s *stubCommentService) Create(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
	return s.createFn(ctx, in)
}

func (s *stubCommentService) Delete(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}

func (s *stubCommentService) ListByReview(ctx context.Context, reviewID string) ([]domain.Comment, error) {
	return s.listFn(ctx, reviewID)
}

func TestCommentHandler_Create_UsesPrincipalAsAuthor(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		createFn: func(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
			if in.UserID != "u1" || in.ReviewID != "r1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Comment{ID: "c1", ReviewID: in.ReviewID, UserID: in.UserID, CommentText: in.CommentText}, nil
		},
	}
	h := handler.NewCommentHandler(stub)

	body := strings.NewReader(`{"review_id":"r1","comment_text":"nice"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/comments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.Principal{ID: "u1", Role: domain.RoleUser})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_id"] != "u1" {
		t.Fatalf("expected user_id u1, got %v", resp["user_id"])
	}
}

func TestCommentHandler_Create_MissingText(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		createFn: func(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewCommentHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/comments", strings.NewReader(`{"review_id":"r1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.Principal{ID: "u1", Role: domain.RoleUser})

	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCommentHandler_ListByReview(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		listFn: func(ctx context.Context, reviewID string) ([]domain.Comment, error) {
			if reviewID != "r1" {
				t.Fatalf("unexpected review id: %s", reviewID)
			}
			return []domain.Comment{
				{ID: "c1", ReviewID: "r1", UserID: "u1", Username: "user1", CommentText: "nice"},
				{ID: "c2", ReviewID: "r1", UserID: "u2", Username: "admin", CommentText: "thanks"},
			}, nil
		},
	}
	h := handler.NewCommentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/r1/comments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("r1")

	if err := h.ListByReview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var comments []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &comments); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0]["username"] != "user1" || comments[1]["username"] != "admin" {
		t.Fatalf("unexpected authors: %v", comments)
	}
}

func TestCommentHandler_Delete_NotOwnedMapsTo404(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		deleteFn: func(ctx context.Context, id, userID string) error {
			if userID != "u2" {
				t.Fatalf("unexpected user: %s", userID)
			}
			return domain.ErrCommentNotFound
		},
	}
	h := handler.NewCommentHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/c1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.Principal{ID: "u2", Role: domain.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Delete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
