package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/registrotec/equipos-api/internal/core/domain"
	"github.com/registrotec/equipos-api/internal/pkg/token"
)

// stubRoleRepo resolves role ids from a fixed map, mirroring the roles table.
type stubRoleRepo struct {
	names map[int64]string
	calls int
}

func (r *stubRoleRepo) FindNameByID(_ context.Context, roleID int64) (string, error) {
	r.calls++
	name, ok := r.names[roleID]
	if !ok {
		return "", domain.ErrInvalidRole
	}
	return name, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for id, n := range r.names {
		if n == name {
			return &domain.Role{ID: id, Name: n}, nil
		}
	}
	return nil, domain.ErrInvalidRole
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{names: map[int64]string{
		1: domain.RoleAdmin,
		2: domain.RoleTechnician,
		3: domain.RoleClient,
	}}
}

func signFor(t *testing.T, userID, roleID int64) string {
	t.Helper()
	signed, err := token.Sign("secret", userID, roleID, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runGuard(t *testing.T, mw echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := mw(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestGuard_AllowsPermittedRole(t *testing.T) {
	repo := newStubRoleRepo()
	mw := Guard(repo, "secret", domain.RoleClient)

	called := false
	rec := runGuard(t, mw, "Bearer "+signFor(t, 7, 3), func(c echo.Context) error {
		called = true
		identity, err := CurrentIdentity(c)
		if err != nil {
			t.Fatalf("identity not set: %v", err)
		}
		if identity.UserID != 7 {
			t.Fatalf("expected user id 7, got %d", identity.UserID)
		}
		if identity.Role != domain.RoleClient {
			t.Fatalf("expected role CLIENTE, got %s", identity.Role)
		}
		if identity.IsAdmin {
			t.Fatalf("client must not be admin")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_EmptyAllowListAdmitsAnyRole(t *testing.T) {
	repo := newStubRoleRepo()
	mw := Guard(repo, "secret")

	for roleID := int64(1); roleID <= 3; roleID++ {
		rec := runGuard(t, mw, "Bearer "+signFor(t, 1, roleID), func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("role id %d: expected 200, got %d", roleID, rec.Code)
		}
	}
}

func TestGuard_MissingToken(t *testing.T) {
	mw := Guard(newStubRoleRepo(), "secret")

	rec := runGuard(t, mw, "", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGuard_InvalidToken(t *testing.T) {
	mw := Guard(newStubRoleRepo(), "secret")

	rec := runGuard(t, mw, "Bearer not-a-token", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGuard_ExpiredToken(t *testing.T) {
	now := time.Now()
	expired := token.Claims{
		UserID: 1,
		RoleID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	// Expiry rejects even the admin role.
	mw := Guard(newStubRoleRepo(), "secret", domain.RoleAdmin)
	rec := runGuard(t, mw, "Bearer "+signed, func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGuard_TokenWithoutScheme(t *testing.T) {
	repo := newStubRoleRepo()
	mw := Guard(repo, "secret", domain.RoleClient)

	// The scheme prefix is optional; a bare token must also pass.
	rec := runGuard(t, mw, signFor(t, 7, 3), func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_UnknownRole(t *testing.T) {
	repo := newStubRoleRepo()
	mw := Guard(repo, "secret")

	// Role id 9 has no row; valid token, stale role.
	rec := runGuard(t, mw, "Bearer "+signFor(t, 1, 9), func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestGuard_RoleNotAllowed(t *testing.T) {
	repo := newStubRoleRepo()
	mw := Guard(repo, "secret", domain.RoleAdmin)

	rec := runGuard(t, mw, "Bearer "+signFor(t, 7, 3), func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestGuard_ResolvesRoleOnEveryRequest(t *testing.T) {
	repo := newStubRoleRepo()
	mw := Guard(repo, "secret")
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	signed := "Bearer " + signFor(t, 7, 3)
	runGuard(t, mw, signed, ok)
	runGuard(t, mw, signed, ok)
	if repo.calls != 2 {
		t.Fatalf("expected 2 role lookups, got %d", repo.calls)
	}

	// A role change takes effect without re-login.
	repo.names[3] = domain.RoleTechnician
	rec := runGuard(t, mw, signed, func(c echo.Context) error {
		identity, _ := CurrentIdentity(c)
		if identity.Role != domain.RoleTechnician {
			t.Fatalf("expected refreshed role, got %s", identity.Role)
		}
		return c.NoContent(http.StatusOK)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCurrentIdentity_MissingGuard(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if _, err := CurrentIdentity(c); err == nil {
		t.Fatalf("expected error when guard did not run")
	}
}
