package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

// ActorKey is the echo context key under which Auth stores the
// authenticated *domain.Principal.
const ActorKey = "actor"

// Auth validates the bearer JWT and stores the authenticated actor
// principal in the request context. Privileges are not carried in the
// token; they are looked up per request so revocation is immediate.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}
			nickname, _ := claims["nickname"].(string)
			identity, _ := claims["identity"].(string)

			c.Set(ActorKey, &domain.Principal{
				ID:         sub,
				ExternalID: identity,
				Kind:       domain.KindUser,
				Nickname:   nickname,
			})

			return next(c)
		}
	}
}
