package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/pixelrate/game-review-api/docs"
	"github.com/pixelrate/game-review-api/internal/api/handler"
	"github.com/pixelrate/game-review-api/internal/api/middleware"
	"github.com/pixelrate/game-review-api/internal/core/domain"
	"github.com/pixelrate/game-review-api/internal/core/service"
	"github.com/pixelrate/game-review-api/internal/infrastructure/config"
	"github.com/pixelrate/game-review-api/internal/infrastructure/db/postgres"
	"github.com/pixelrate/game-review-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The database handle is injected; the router owns no connection lifecycle.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gamereview"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	gameRepo := postgres.NewGameRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	commentRepo := postgres.NewCommentRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	gameService := service.NewGameService(gameRepo, reviewRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	reviewService := service.NewReviewService(reviewRepo)
	commentService := service.NewCommentService(commentRepo)

	authHandler := handler.NewAuthHandler(authService)
	gameHandler := handler.NewGameHandler(gameService, categoryService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	commentHandler := handler.NewCommentHandler(commentService)

	authGuard := middleware.Auth(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/games", gameHandler.List)
	e.GET("/api/games/:id", gameHandler.Get)
	e.GET("/api/categories", gameHandler.ListCategories)
	e.GET("/api/reviews/:id/comments", commentHandler.ListByReview)

	// --- Protected routes ---
	e.POST("/api/reviews", reviewHandler.Create, authGuard)
	e.PUT("/api/reviews/:id", reviewHandler.Update, authGuard)
	e.DELETE("/api/reviews/:id", reviewHandler.Delete, authGuard)
	e.POST("/api/comments", commentHandler.Create, authGuard)
	e.DELETE("/api/comments/:id", commentHandler.Delete, authGuard)

	// --- Admin catalog management ---
	e.POST("/api/games", gameHandler.Create, authGuard, adminOnly)
	e.PUT("/api/games/:id", gameHandler.Update, authGuard, adminOnly)
	e.DELETE("/api/games/:id", gameHandler.Delete, authGuard, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
