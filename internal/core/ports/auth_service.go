package ports

import (
	"context"

	"github.com/pixelrate/game-review-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenVerifier checks a bearer token and returns the principal it encodes.
// Failures are reported as domain.ErrTokenExpired or domain.ErrTokenInvalid.
type TokenVerifier interface {
	VerifyToken(token string) (domain.Principal, error)
}
