package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veridianlabs/identity-api/internal/api/middleware"
	"github.com/veridianlabs/identity-api/internal/core/domain"
)

// ctxActor extracts the authenticated principal injected by the Auth
// middleware. Its presence proves the middleware ran; a handler reached
// without it is a wiring bug surfaced as 401 rather than a nil deref.
func ctxActor(c echo.Context) (*domain.Principal, error) {
	actor, _ := c.Get(middleware.ActorKey).(*domain.Principal)
	if actor == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}
