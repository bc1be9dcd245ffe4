package ports

import (
	"context"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

// ClientRepository defines the interface for OAuth2 client persistence.
type ClientRepository interface {
	FindByClientID(ctx context.Context, clientID string) (*domain.OAuth2Client, error)

	// Edit persists the client's grant types and PKCE flag together with
	// the full redirect URI list. The submitted list replaces whatever was
	// stored before; there is no incremental add/remove.
	Edit(ctx context.Context, client *domain.OAuth2Client, redirectURIs []string) error

	RedirectURIs(ctx context.Context, client *domain.OAuth2Client) ([]string, error)
}
