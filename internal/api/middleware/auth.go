package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/service"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// Auth resolves the session token (cookie first, Authorization header as a
// fallback for non-cookie clients) to a full user record and injects it
// into the request context.
func Auth(tokens *service.TokenIssuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			userID, err := tokens.Verify(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user", user)

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
