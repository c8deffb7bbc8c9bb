package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/registrotec/equipos-api/internal/core/domain"
)

const identityKey = "identity"

// SetIdentity attaches the authenticated identity to the request context.
func SetIdentity(c echo.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity returns the identity injected by the Guard. A missing
// identity means the route was wired without the guard; fail closed.
func CurrentIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	if !ok || identity.UserID == 0 {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
