package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelrate/game-review-api/internal/api/metrics"
	"github.com/pixelrate/game-review-api/internal/core/ports"
)

// CommentHandler handles the authenticated comment routes.
type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create handles POST /api/comments.
//
// @Summary      Comment on a review
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment details"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	comment, err := h.commentService.Create(c.Request().Context(), ports.CreateCommentInput{
		ReviewID:    req.ReviewID,
		UserID:      principal.ID,
		CommentText: req.CommentText,
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, comment)
}

// ListByReview handles GET /api/reviews/:id/comments.
//
// @Summary      List comments on a review
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Review id"
// @Success      200  {array}   domain.Comment
// @Failure      500  {object}  errorResponse
// @Router       /api/reviews/{id}/comments [get]
func (h *CommentHandler) ListByReview(c echo.Context) error {
	comments, err := h.commentService.ListByReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Delete handles DELETE /api/comments/:id.
//
// @Summary      Delete an own comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "Comment id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), c.Param("id"), principal.ID); err != nil {
		return err
	}

	metrics.CommentsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
