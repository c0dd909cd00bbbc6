package ports

import (
	"context"

	"github.com/minimarket/storefront-system/internal/core/domain"
)

// AuthService implements the demo single-account login flow. Register
// overwrites the one stored user; Login succeeds only on an exact match of
// email and password and returns a signed session token.
type AuthService interface {
	Register(ctx context.Context, name, email, pass string) (*domain.StoredUser, error)
	Login(ctx context.Context, email, pass string) (string, *domain.StoredUser, error)
}
