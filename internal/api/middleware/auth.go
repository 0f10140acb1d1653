package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
)

// Authentication lives in the external identity service. Its gateway
// terminates the caller's credentials and forwards the resolved identity in
// these headers; requests arriving without them are unauthenticated.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"

	userContextKey = "auth.user"
)

// RequireUser rejects requests without a resolved identity and stashes the
// caller on the context for handlers.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Request().Header.Get(HeaderUserID)
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}

			c.Set(userContextKey, domain.User{
				ID:   userID,
				Name: c.Request().Header.Get(HeaderUserName),
			})
			return next(c)
		}
	}
}

// UserFrom returns the authenticated caller set by RequireUser.
func UserFrom(c echo.Context) (domain.User, bool) {
	user, ok := c.Get(userContextKey).(domain.User)
	return user, ok
}

// RequireServiceToken guards service-to-service endpoints (the cron
// trigger). An empty configured token fails closed.
func RequireServiceToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(echo.HeaderAuthorization)
			presented := strings.TrimPrefix(authorization, "Bearer ")

			if token == "" || presented == "" || presented != token {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "valid service credential required",
				})
			}
			return next(c)
		}
	}
}
