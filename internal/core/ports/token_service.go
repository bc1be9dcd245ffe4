package ports

import (
	"context"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

// TokenService authenticates a user by email and password and issues the
// bearer token the admin endpoints require.
type TokenService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
