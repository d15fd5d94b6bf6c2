package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment is a reply attached to a review. Same authorship rule as Review.
type Comment struct {
	ID          string    `json:"id"`
	ReviewID    string    `json:"review_id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}
