package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// --- Games ---

type createGameRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id" validate:"required"`
	ImageURL    string `json:"image_url"`
}

type updateGameRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id" validate:"required"`
	ImageURL    string `json:"image_url"`
}

// --- Reviews ---

// Any client-supplied user_id is ignored: authorship always comes from the
// verified token.
type createReviewRequest struct {
	GameID     string `json:"game_id"     validate:"required"`
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"required"`
}

type updateReviewRequest struct {
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"required"`
}

// --- Comments ---

type createCommentRequest struct {
	ReviewID    string `json:"review_id"    validate:"required"`
	CommentText string `json:"comment_text" validate:"required"`
}
