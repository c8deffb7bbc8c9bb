package ports

import (
	"context"

	"github.com/registrotec/equipos-api/internal/core/domain"
)

// RegisterEquipmentInput carries the client-supplied equipment fields. The
// owner is never taken from the payload; it is always the verified caller.
type RegisterEquipmentInput struct {
	Name            string
	Description     string
	SerialNumber    string
	Location        string
	ManufactureYear *int
}

type EquipmentService interface {
	// Register creates equipment owned by the caller, always in status
	// pendiente, and returns the generated id.
	Register(ctx context.Context, caller domain.Identity, input RegisterEquipmentInput) (int64, error)
	// ListByOwner returns a client's own equipment. The requested owner id
	// must equal the caller's id; otherwise domain.ErrForbidden.
	ListByOwner(ctx context.Context, caller domain.Identity, ownerID int64) ([]*domain.Equipment, error)
	// UpdateDescription edits the description of equipment owned by the
	// caller. The record's owner is re-checked before the write.
	UpdateDescription(ctx context.Context, caller domain.Identity, equipmentID int64, description string) error
	ListAll(ctx context.Context) ([]*domain.Equipment, error)
	// UpdateStatus sets the validation state. The value is checked against
	// the fixed enum before any write; domain.ErrInvalidStatus otherwise.
	UpdateStatus(ctx context.Context, equipmentID int64, status string) error
	Delete(ctx context.Context, equipmentID int64) error
}
