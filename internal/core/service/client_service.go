package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/veridianlabs/identity-api/internal/core/domain"
	"github.com/veridianlabs/identity-api/internal/core/ports"
)

// Caller intents for the admin privilege error. The messages differ so an
// operator can tell which half of the edit flow rejected them.
const (
	intentAdd     = "add new OAuth2 clients"
	intentInspect = "inspect OAuth2 clients that are not your own"
)

// ClientService is the gate around reading and mutating OAuth2 client
// configuration: it resolves the addressed app, enforces the admin
// privilege, and hides clients owned by other apps.
type ClientService struct {
	principals ports.PrincipalRepository
	clients    ports.ClientRepository
	privileges ports.PrivilegeRepository
	log        zerolog.Logger
}

func NewClientService(principals ports.PrincipalRepository, clients ports.ClientRepository, privileges ports.PrivilegeRepository, log zerolog.Logger) *ClientService {
	return &ClientService{
		principals: principals,
		clients:    clients,
		privileges: privileges,
		log:        log,
	}
}

// GetForEdit returns a client's current configuration and redirect URIs
// for rendering the edit form.
func (s *ClientService) GetForEdit(ctx context.Context, in ports.ViewClientInput) (*ports.ClientConfig, error) {
	client, err := s.loadOwned(ctx, in.AppExternalID, in.ClientID, in.Actor, intentAdd)
	if err != nil {
		return nil, err
	}

	uris, err := s.clients.RedirectURIs(ctx, client)
	if err != nil {
		return nil, err
	}

	return &ports.ClientConfig{Client: client, RedirectURIs: uris}, nil
}

// Edit replaces a client's allowed grant types, PKCE requirement and
// redirect URI set. The client entity is only mutated after the store
// confirms the write, so a failed or cancelled request leaves no trace.
func (s *ClientService) Edit(ctx context.Context, in ports.EditClientInput) (*domain.OAuth2Client, error) {
	client, err := s.loadOwned(ctx, in.AppExternalID, in.ClientID, in.Actor, intentInspect)
	if err != nil {
		return nil, err
	}

	grantTypes := in.GrantFlags.Selected()
	if len(grantTypes) == 0 {
		return nil, domain.ErrNoGrantTypes
	}

	updated := *client
	updated.AllowedGrantTypes = grantTypes
	updated.RequirePkce = in.RequirePkce
	updated.UpdatedAt = time.Now().UTC()

	if err := s.clients.Edit(ctx, &updated, in.RedirectURIs); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("client_id", updated.ClientID).
		Str("app", in.AppExternalID).
		Int("grant_types", len(grantTypes)).
		Bool("require_pkce", updated.RequirePkce).
		Msg("oauth2 client reconfigured")

	return &updated, nil
}

// loadOwned performs the shared check sequence: app exists, client
// exists, client belongs to the addressed app, actor is an admin. An
// ownership mismatch is reported as ErrClientNotFound rather than a
// privilege error, and that masking runs before the privilege check, so
// the existence of clients under other apps never leaks to anyone.
func (s *ClientService) loadOwned(ctx context.Context, appExternalID, clientID string, actor *domain.Principal, intent string) (*domain.OAuth2Client, error) {
	app, err := s.principals.FindByExternalID(ctx, appExternalID, domain.KindApp)
	if err != nil {
		return nil, err
	}

	client, err := s.clients.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.AppID != app.ID {
		return nil, domain.ErrClientNotFound
	}

	ok, err := s.privileges.Has(ctx, actor, domain.PrivilegeAdmin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: only users with the %q privilege can %s",
			domain.ErrAdminPrivilegeRequired, domain.PrivilegeAdmin, intent)
	}

	return client, nil
}
