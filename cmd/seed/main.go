// Command seed populates the database with demo data: two users (one admin),
// a few categories and games, and some reviews with comments.
package main

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/pixelrate/game-review-api/internal/core/domain"
	"github.com/pixelrate/game-review-api/internal/infrastructure/config"
	"github.com/pixelrate/game-review-api/internal/infrastructure/db/postgres"
	"github.com/pixelrate/game-review-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer func() { _ = db.Close() }()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	users := postgres.NewUserRepository(db)
	categories := postgres.NewCategoryRepository(db)
	games := postgres.NewGameRepository(db)
	reviews := postgres.NewReviewRepository(db)
	comments := postgres.NewCommentRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash seed password")
	}

	user1, err := users.Create(ctx, &domain.User{
		Username:     "user1",
		Email:        "user1@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed user1")
	}
	admin, err := users.Create(ctx, &domain.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin")
	}
	log.Info().Str("user", user1.ID).Str("admin", admin.ID).Msg("users seeded")

	action, err := categories.Create(ctx, "Action")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed categories")
	}
	adventure, _ := categories.Create(ctx, "Adventure")
	_, _ = categories.Create(ctx, "Simulation")
	log.Info().Msg("categories seeded")

	game1, err := games.Create(ctx, &domain.Game{
		Title:       "Game One",
		Description: "An exciting action game.",
		CategoryID:  action.ID,
		ImageURL:    "https://example.com/game1.jpg",
		OwnerID:     admin.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed games")
	}
	game2, _ := games.Create(ctx, &domain.Game{
		Title:       "Game Two",
		Description: "A thrilling adventure game.",
		CategoryID:  adventure.ID,
		ImageURL:    "https://example.com/game2.jpg",
		OwnerID:     admin.ID,
	})
	log.Info().Str("game1", game1.ID).Str("game2", game2.ID).Msg("games seeded")

	review1, err := reviews.Create(ctx, &domain.Review{
		GameID:     game1.ID,
		UserID:     user1.ID,
		Rating:     5,
		ReviewText: "Amazing gameplay and graphics!",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed reviews")
	}
	review2, _ := reviews.Create(ctx, &domain.Review{
		GameID:     game2.ID,
		UserID:     user1.ID,
		Rating:     4,
		ReviewText: "Great story but could use better graphics.",
	})

	_, _ = comments.Create(ctx, &domain.Comment{
		ReviewID:    review1.ID,
		UserID:      admin.ID,
		CommentText: "Thank you for the feedback!",
	})
	_, _ = comments.Create(ctx, &domain.Comment{
		ReviewID:    review2.ID,
		UserID:      admin.ID,
		CommentText: "We appreciate your thoughts!",
	})

	log.Info().Msg("database seeding completed")
}
