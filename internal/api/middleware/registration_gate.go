package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/veridianlabs/identity-api/internal/core/domain"
	"github.com/veridianlabs/identity-api/internal/core/ports"
)

// RegistrationGate blocks every request to the registration endpoints
// unless the registration.enabled setting is on. The check runs before
// binding or any identity lookup, and a settings-store failure fails
// closed.
func RegistrationGate(settings ports.SettingStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			enabled, err := settings.Bool(c.Request().Context(), ports.SettingRegistrationEnabled)
			if err != nil {
				return err
			}
			if !enabled {
				return domain.ErrRegistrationDisabled
			}
			return next(c)
		}
	}
}
