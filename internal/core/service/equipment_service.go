package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/registrotec/equipos-api/internal/core/domain"
	"github.com/registrotec/equipos-api/internal/core/ports"
)

// EquipmentService implements the client and admin equipment operations.
type EquipmentService struct {
	repo   ports.EquipmentRepository
	logger zerolog.Logger
}

func NewEquipmentService(repo ports.EquipmentRepository, logger zerolog.Logger) *EquipmentService {
	return &EquipmentService{repo: repo, logger: logger}
}

// Register creates equipment owned by the caller. Status always starts
// pendiente; only an admin may move it later.
func (s *EquipmentService) Register(ctx context.Context, caller domain.Identity, input ports.RegisterEquipmentInput) (int64, error) {
	equipment := &domain.Equipment{
		Name:            input.Name,
		Description:     input.Description,
		Status:          domain.StatusPending,
		OwnerID:         caller.UserID,
		SerialNumber:    input.SerialNumber,
		Location:        input.Location,
		ManufactureYear: input.ManufactureYear,
	}

	id, err := s.repo.Create(ctx, equipment)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("equipment_id", id).Int64("owner_id", caller.UserID).Str("serial", input.SerialNumber).Msg("equipment registered")
	return id, nil
}

func (s *EquipmentService) ListByOwner(ctx context.Context, caller domain.Identity, ownerID int64) ([]*domain.Equipment, error) {
	if caller.UserID != ownerID {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// UpdateDescription re-verifies ownership against the stored row before
// touching it; the role-level check alone is not enough.
func (s *EquipmentService) UpdateDescription(ctx context.Context, caller domain.Identity, equipmentID int64, description string) error {
	ownerID, err := s.repo.FindOwnerID(ctx, equipmentID)
	if err != nil {
		return err
	}
	if ownerID != caller.UserID {
		return domain.ErrForbidden
	}
	return s.repo.UpdateDescription(ctx, equipmentID, description)
}

func (s *EquipmentService) ListAll(ctx context.Context) ([]*domain.Equipment, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus validates the value against the fixed enum before any write.
func (s *EquipmentService) UpdateStatus(ctx context.Context, equipmentID int64, status string) error {
	next := domain.EquipmentStatus(status)
	if !next.IsValid() {
		return domain.ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, equipmentID, next); err != nil {
		return err
	}
	s.logger.Info().Int64("equipment_id", equipmentID).Str("status", status).Msg("equipment status updated")
	return nil
}

func (s *EquipmentService) Delete(ctx context.Context, equipmentID int64) error {
	if err := s.repo.Delete(ctx, equipmentID); err != nil {
		return err
	}
	s.logger.Info().Int64("equipment_id", equipmentID).Msg("equipment deleted")
	return nil
}
