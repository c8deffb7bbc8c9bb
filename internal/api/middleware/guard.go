package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/registrotec/equipos-api/internal/api/metrics"
	"github.com/registrotec/equipos-api/internal/core/domain"
	"github.com/registrotec/equipos-api/internal/core/ports"
	"github.com/registrotec/equipos-api/internal/pkg/token"
)

// Guard gates a route behind token verification plus a role allow-list.
// An empty allow-list admits any authenticated role.
//
// The pipeline runs in order: extract bearer token, verify signature and
// expiry, resolve the role name from the roles table, build the identity,
// check the allow-list. The role is re-resolved from the database on every
// request rather than trusted from the token payload, so role changes take
// effect without re-login. The lookup and the downstream handler are
// independent round trips; no transaction spans them.
func Guard(roles ports.RoleRepository, jwtSecret string, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.GuardRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token not provided")
			}

			raw := authHeader
			if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
				raw = raw[7:]
			}

			claims, err := token.Parse(jwtSecret, raw)
			if err != nil {
				metrics.GuardRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			roleName, err := roles.FindNameByID(c.Request().Context(), claims.RoleID)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidRole) {
					metrics.GuardRejectionsTotal.WithLabelValues("unknown_role").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "invalid role")
				}
				return err
			}

			identity := domain.Identity{
				UserID:  claims.UserID,
				Role:    roleName,
				IsAdmin: roleName == domain.RoleAdmin,
			}

			if len(allowed) > 0 {
				if _, ok := allowed[roleName]; !ok {
					metrics.GuardRejectionsTotal.WithLabelValues("role_not_allowed").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
			}

			SetIdentity(c, identity)
			return next(c)
		}
	}
}
