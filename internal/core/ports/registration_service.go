package ports

import (
	"context"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

// RegisterInput carries the self-registration form fields.
type RegisterInput struct {
	EmailAddress string
	Nickname     string
	Password     string
}

type RegistrationService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
}
