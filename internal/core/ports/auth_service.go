package ports

import (
	"context"

	"github.com/registrotec/equipos-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role is the
// role name as typed by the caller; the service upper-cases and resolves it.
type RegisterInput struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	Phone          string
	Role           string
	CompanyTaxID   string
	CompanyName    string
	CompanyAddress string
}

type AuthService interface {
	// Register creates the account and returns the generated user id.
	Register(ctx context.Context, input RegisterInput) (int64, error)
	// Login verifies credentials and returns a signed session token plus the
	// user (with role name resolved). Distinguishes domain.ErrUserNotFound
	// from domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
