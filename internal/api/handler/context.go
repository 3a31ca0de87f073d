package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware. A missing or
// mistyped value means the middleware did not run on this route; reject
// with 401 rather than panic.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
