package ports

import (
	"context"

	"github.com/registrotec/equipos-api/internal/core/domain"
)

// EquipmentRepository defines persistence for the equipos table.
type EquipmentRepository interface {
	// Create inserts the equipment and returns the generated id.
	Create(ctx context.Context, equipment *domain.Equipment) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Equipment, error)
	// ListAll returns every equipment joined with its owner's name and email.
	ListAll(ctx context.Context) ([]*domain.Equipment, error)
	// FindOwnerID returns the owning user id for an equipment. Returns
	// domain.ErrEquipmentNotFound when the row is absent.
	FindOwnerID(ctx context.Context, equipmentID int64) (int64, error)
	UpdateDescription(ctx context.Context, equipmentID int64, description string) error
	UpdateStatus(ctx context.Context, equipmentID int64, status domain.EquipmentStatus) error
	Delete(ctx context.Context, equipmentID int64) error
	// CountByOwner reports how many equipment rows reference the user.
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}
