package ports

import (
	"context"

	"github.com/registrotec/equipos-api/internal/core/domain"
)

// UserRepository defines persistence for the usuarios table.
type UserRepository interface {
	// Create inserts the user (PasswordHash already hashed) and returns the
	// generated id. Returns domain.ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user *domain.User) (int64, error)
	// FindByEmail returns the user joined with its role name.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns all users joined with their role names.
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateProfile persists the self-editable fields (names, phone, company).
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, userID, roleID int64) error
	Delete(ctx context.Context, userID int64) error
}

// RoleRepository reads the static roles reference table.
type RoleRepository interface {
	// FindNameByID resolves a role id to its name. Returns
	// domain.ErrInvalidRole when the id has no row.
	FindNameByID(ctx context.Context, roleID int64) (string, error)
	// FindByName resolves a role name (exact, upper-case) to its row.
	// Returns domain.ErrInvalidRole when the name has no row.
	FindByName(ctx context.Context, name string) (*domain.Role, error)
}
