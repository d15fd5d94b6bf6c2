package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

type GameRepository struct {
	db *sql.DB
}

func NewGameRepository(db *sql.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) List(ctx context.Context) ([]domain.Game, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.title, g.description, g.category_id, c.name,
		       g.image_url, g.owner_id, g.created_at,
		       AVG(r.rating) AS average_rating
		FROM games g
		LEFT JOIN categories c ON g.category_id = c.id
		LEFT JOIN reviews r ON r.game_id = g.id
		GROUP BY g.id, c.name
		ORDER BY g.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer func() { _ = rows.Close() }()

	games := []domain.Game{}
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, *game)
	}
	return games, rows.Err()
}

func (r *GameRepository) FindByID(ctx context.Context, id string) (*domain.Game, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT g.id, g.title, g.description, g.category_id, c.name,
		       g.image_url, g.owner_id, g.created_at,
		       (SELECT AVG(rating) FROM reviews WHERE game_id = g.id) AS average_rating
		FROM games g
		LEFT JOIN categories c ON g.category_id = c.id
		WHERE g.id = $1
	`, id)

	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("find game: %w", err)
	}
	return game, nil
}

func (r *GameRepository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	created := *game
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO games (id, title, description, category_id, image_url, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, created.ID, created.Title, created.Description, nullable(created.CategoryID),
		created.ImageURL, nullable(created.OwnerID)).
		Scan(&created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert game: %w", err)
	}

	return &created, nil
}

func (r *GameRepository) Update(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE games
		SET title = $2, description = $3, category_id = $4, image_url = $5
		WHERE id = $1
	`, game.ID, game.Title, game.Description, nullable(game.CategoryID), game.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("update game: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, domain.ErrGameNotFound
	}

	return r.FindByID(ctx, game.ID)
}

func (r *GameRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

// scanGame reads one game row with its joined category name and aggregated
// rating, both of which may be NULL.
func scanGame(row interface{ Scan(dest ...any) error }) (*domain.Game, error) {
	var (
		game         domain.Game
		categoryID   sql.NullString
		categoryName sql.NullString
		ownerID      sql.NullString
		avgRating    sql.NullFloat64
	)

	err := row.Scan(&game.ID, &game.Title, &game.Description, &categoryID, &categoryName,
		&game.ImageURL, &ownerID, &game.CreatedAt, &avgRating)
	if err != nil {
		return nil, err
	}

	game.CategoryID = categoryID.String
	game.CategoryName = categoryName.String
	game.OwnerID = ownerID.String
	if avgRating.Valid {
		game.AverageRating = &avgRating.Float64
	}
	return &game, nil
}

// nullable maps an empty id to NULL so optional foreign keys stay clean.
func nullable(id string) any {
	if id == "" {
		return nil
	}
	return id
}
