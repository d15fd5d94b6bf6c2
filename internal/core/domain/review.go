package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")

// Review is a user's rating of a game. UserID is set once at creation from
// the authenticated principal and never changes afterwards. Username is a
// read-side join for display.
type Review struct {
	ID         string    `json:"id"`
	GameID     string    `json:"game_id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username,omitempty"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}
