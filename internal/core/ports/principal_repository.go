package ports

import (
	"context"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

// PrincipalRepository is the directory of actors (users and apps).
type PrincipalRepository interface {
	FindByExternalID(ctx context.Context, externalID string, kind domain.PrincipalKind) (*domain.Principal, error)
}
