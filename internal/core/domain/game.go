package domain

import (
	"errors"
	"time"
)

var ErrGameNotFound = errors.New("game not found")

// Game is a catalog entry. CategoryName and AverageRating are read-side
// projections filled in by the storage layer; AverageRating is nil when a
// game has no reviews yet.
type Game struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CategoryID    string    `json:"category_id"`
	CategoryName  string    `json:"category_name,omitempty"`
	ImageURL      string    `json:"image_url"`
	OwnerID       string    `json:"owner_id"`
	AverageRating *float64  `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// Category is static reference data.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
