package ports

import (
	"context"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

// ViewClientInput addresses a client for the edit view.
type ViewClientInput struct {
	AppExternalID string
	ClientID      string
	Actor         *domain.Principal
}

// EditClientInput carries a full replacement configuration for a client.
type EditClientInput struct {
	AppExternalID string
	ClientID      string
	Actor         *domain.Principal
	GrantFlags    domain.GrantTypeFlags
	RequirePkce   bool
	RedirectURIs  []string
}

// ClientConfig is the edit view of a client: the entity plus its
// currently registered redirect URIs.
type ClientConfig struct {
	Client       *domain.OAuth2Client
	RedirectURIs []string
}

type ClientService interface {
	GetForEdit(ctx context.Context, in ViewClientInput) (*ClientConfig, error)
	Edit(ctx context.Context, in EditClientInput) (*domain.OAuth2Client, error)
}
