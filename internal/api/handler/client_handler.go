package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/veridianlabs/identity-api/internal/api/metrics"
	"github.com/veridianlabs/identity-api/internal/core/domain"
	"github.com/veridianlabs/identity-api/internal/core/ports"
)

// ClientHandler handles the OAuth2 client edit endpoints.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// --- Request / Response types ---

type clientLinks struct {
	Self string `json:"self"`
}

type editFormResponse struct {
	ClientID          string             `json:"client_id"`
	AllowedGrantTypes []domain.GrantType `json:"allowed_grant_types"`
	RequirePkce       bool               `json:"require_pkce"`
	RedirectURIs      []string           `json:"redirect_uris"`
	Links             clientLinks        `json:"_links"`
}

// EditForm handles GET /app/:id/client/:clientId/edit.
//
// @Summary      Get an OAuth2 client's editable configuration
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true  "App principal external id"
// @Param        clientId  path      string  true  "OAuth2 client id"
// @Success      200       {object}  editFormResponse
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /app/{id}/client/{clientId}/edit [get]
func (h *ClientHandler) EditForm(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	cfg, err := h.service.GetForEdit(c.Request().Context(), ports.ViewClientInput{
		AppExternalID: c.Param("id"),
		ClientID:      c.Param("clientId"),
		Actor:         actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, editFormResponse{
		ClientID:          cfg.Client.ClientID,
		AllowedGrantTypes: cfg.Client.AllowedGrantTypes,
		RequirePkce:       cfg.Client.RequirePkce,
		RedirectURIs:      cfg.RedirectURIs,
		Links:             clientLinks{Self: cfg.Client.Href},
	})
}

// Edit handles POST /app/:id/client/:clientId/edit. The body is
// form-encoded; on success the client is redirected to the client's
// canonical URL with 303 See Other so a refresh cannot resubmit the form.
//
// @Summary      Update an OAuth2 client's grant types, PKCE flag and redirect URIs
// @Tags         clients
// @Accept       x-www-form-urlencoded
// @Security     BearerAuth
// @Param        id        path   string  true   "App principal external id"
// @Param        clientId  path   string  true   "OAuth2 client id"
// @Success      303
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Router       /app/{id}/client/{clientId}/edit [post]
func (h *ClientHandler) Edit(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	// An absent redirectUris field is a malformed submission; a present
	// but empty one legitimately clears the list.
	if !form.Has("redirectUris") {
		metrics.ClientEditsRejectedTotal.WithLabelValues("invalid_input").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "You must specify the redirectUris property")
	}

	client, err := h.service.Edit(c.Request().Context(), ports.EditClientInput{
		AppExternalID: c.Param("id"),
		ClientID:      c.Param("clientId"),
		Actor:         actor,
		GrantFlags: domain.GrantTypeFlags{
			ClientCredentials: parseFormBool(form.Get("allowClientCredentials")),
			AuthorizationCode: parseFormBool(form.Get("allowAuthorizationCode")),
			Implicit:          parseFormBool(form.Get("allowImplicit")),
			RefreshToken:      parseFormBool(form.Get("allowRefreshToken")),
			Password:          parseFormBool(form.Get("allowPassword")),
		},
		RequirePkce:  parseFormBool(form.Get("requirePkce")),
		RedirectURIs: domain.NormalizeRedirectURIs(form.Get("redirectUris")),
	})
	if err != nil {
		metrics.ClientEditsRejectedTotal.WithLabelValues(editRejectReason(err)).Inc()
		return err
	}

	metrics.ClientEditsTotal.WithLabelValues(strconv.FormatBool(client.RequirePkce)).Inc()
	return c.Redirect(http.StatusSeeOther, client.Href)
}

// parseFormBool interprets the checkbox/boolean conventions of HTML forms.
// An absent field binds as "" and reads as false.
func parseFormBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "on", "yes":
		return true
	default:
		return false
	}
}

func editRejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAppNotFound), errors.Is(err, domain.ErrClientNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAdminPrivilegeRequired):
		return "forbidden"
	case errors.Is(err, domain.ErrNoGrantTypes):
		return "empty_grant_types"
	default:
		return "error"
	}
}
