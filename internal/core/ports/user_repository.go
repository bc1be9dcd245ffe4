package ports

import (
	"context"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

// UserRepository defines the interface for user and credential persistence.
// Create must enforce identity uniqueness and report a collision as
// domain.ErrUserExists, so concurrent registrations of the same identity
// cannot both succeed.
type UserRepository interface {
	FindByIdentity(ctx context.Context, identity string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	CreatePassword(ctx context.Context, userID, passwordHash string) error
	FindCredential(ctx context.Context, userID string) (*domain.Credential, error)
}
