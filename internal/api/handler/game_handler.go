package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelrate/game-review-api/internal/core/ports"
)

// GameHandler handles catalog reads and the admin management routes.
type GameHandler struct {
	gameService     ports.GameService
	categoryService ports.CategoryService
}

func NewGameHandler(gameService ports.GameService, categoryService ports.CategoryService) *GameHandler {
	return &GameHandler{gameService: gameService, categoryService: categoryService}
}

// List handles GET /api/games.
//
// @Summary      List all games with their average rating
// @Tags         games
// @Produce      json
// @Success      200  {array}   domain.Game
// @Failure      500  {object}  errorResponse
// @Router       /api/games [get]
func (h *GameHandler) List(c echo.Context) error {
	games, err := h.gameService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, games)
}

// Get handles GET /api/games/:id.
//
// An unknown id still answers 200 with a null game and no reviews; clients
// treat that as "nothing here" rather than an error.
//
// @Summary      Get a game with its reviews
// @Tags         games
// @Produce      json
// @Param        id   path      string  true  "Game id"
// @Success      200  {object}  ports.GameDetail
// @Failure      500  {object}  errorResponse
// @Router       /api/games/{id} [get]
func (h *GameHandler) Get(c echo.Context) error {
	detail, err := h.gameService.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// ListCategories handles GET /api/categories.
//
// @Summary      List categories
// @Tags         games
// @Produce      json
// @Success      200  {array}   domain.Category
// @Failure      500  {object}  errorResponse
// @Router       /api/categories [get]
func (h *GameHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Create handles POST /api/games (admin only).
//
// @Summary      Add a game to the catalog
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGameRequest  true  "Game details"
// @Success      201   {object}  domain.Game
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/games [post]
func (h *GameHandler) Create(c echo.Context) error {
	var req createGameRequest
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

	game, err := h.gameService.Create(c.Request().Context(), ports.CreateGameInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		OwnerID:     principal.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, game)
}

// Update handles PUT /api/games/:id (admin only).
//
// @Summary      Update a catalog entry
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Game id"
// @Param        body  body      updateGameRequest  true  "Game details"
// @Success      200   {object}  domain.Game
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/games/{id} [put]
func (h *GameHandler) Update(c echo.Context) error {
	var req updateGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	game, err := h.gameService.Update(c.Request().Context(), ports.UpdateGameInput{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, game)
}

// Delete handles DELETE /api/games/:id (admin only).
//
// @Summary      Remove a catalog entry
// @Tags         games
// @Security     BearerAuth
// @Param        id  path  string  true  "Game id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/games/{id} [delete]
func (h *GameHandler) Delete(c echo.Context) error {
	if err := h.gameService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
