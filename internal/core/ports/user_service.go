package ports

import (
	"context"

	"github.com/registrotec/equipos-api/internal/core/domain"
)

// UpdateProfileInput carries the self-editable profile fields.
type UpdateProfileInput struct {
	FirstName      string
	LastName       string
	Phone          string
	CompanyTaxID   string
	CompanyName    string
	CompanyAddress string
}

type UserService interface {
	// Profile returns a user. Callers may only read their own profile unless
	// they are admins; otherwise domain.ErrForbidden.
	Profile(ctx context.Context, caller domain.Identity, userID int64) (*domain.User, error)
	// UpdateProfile mutates the self-editable fields under the same
	// ownership rule as Profile.
	UpdateProfile(ctx context.Context, caller domain.Identity, userID int64, input UpdateProfileInput) error
	List(ctx context.Context) ([]*domain.User, error)
	// ChangeRole assigns an existing role to the user.
	ChangeRole(ctx context.Context, userID, roleID int64) error
	// Delete removes the user unless equipment rows still reference it, in
	// which case domain.ErrUserHasEquipment is returned and nothing changes.
	Delete(ctx context.Context, userID int64) error
}
