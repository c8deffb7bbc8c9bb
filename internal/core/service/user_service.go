package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/registrotec/equipos-api/internal/core/domain"
	"github.com/registrotec/equipos-api/internal/core/ports"
)

// UserService implements profile self-service and the admin user operations.
type UserService struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	equipment ports.EquipmentRepository
	logger    zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, equipment ports.EquipmentRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, equipment: equipment, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, caller domain.Identity, userID int64) (*domain.User, error) {
	if !caller.CanActFor(userID) {
		return nil, domain.ErrForbidden
	}
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, caller domain.Identity, userID int64, input ports.UpdateProfileInput) error {
	if !caller.CanActFor(userID) {
		return domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.CompanyTaxID = input.CompanyTaxID
	user.CompanyName = input.CompanyName
	user.CompanyAddress = input.CompanyAddress

	return s.users.UpdateProfile(ctx, user)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) ChangeRole(ctx context.Context, userID, roleID int64) error {
	// Roles are static reference data; the id must already exist.
	if _, err := s.roles.FindNameByID(ctx, roleID); err != nil {
		return err
	}
	if err := s.users.UpdateRole(ctx, userID, roleID); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", userID).Int64("role_id", roleID).Msg("role changed")
	return nil
}

func (s *UserService) Delete(ctx context.Context, userID int64) error {
	// Referential guard: never delete a user that still owns equipment.
	n, err := s.equipment.CountByOwner(ctx, userID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrUserHasEquipment
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", userID).Msg("user deleted")
	return nil
}
