package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/registrotec/equipos-api/internal/core/domain"
	"github.com/registrotec/equipos-api/internal/core/ports"
)

type stubEquipmentRepo struct {
	seq   int64
	items map[int64]*domain.Equipment
}

func newStubEquipmentRepo() *stubEquipmentRepo {
	return &stubEquipmentRepo{items: make(map[int64]*domain.Equipment)}
}

func (r *stubEquipmentRepo) Create(_ context.Context, equipment *domain.Equipment) (int64, error) {
	r.seq++
	clone := *equipment
	clone.ID = r.seq
	r.items[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubEquipmentRepo) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Equipment, error) {
	var items []*domain.Equipment
	for _, e := range r.items {
		if e.OwnerID == ownerID {
			clone := *e
			items = append(items, &clone)
		}
	}
	return items, nil
}

func (r *stubEquipmentRepo) ListAll(_ context.Context) ([]*domain.Equipment, error) {
	var items []*domain.Equipment
	for _, e := range r.items {
		clone := *e
		items = append(items, &clone)
	}
	return items, nil
}

func (r *stubEquipmentRepo) FindOwnerID(_ context.Context, equipmentID int64) (int64, error) {
	e, ok := r.items[equipmentID]
	if !ok {
		return 0, domain.ErrEquipmentNotFound
	}
	return e.OwnerID, nil
}

func (r *stubEquipmentRepo) UpdateDescription(_ context.Context, equipmentID int64, description string) error {
	e, ok := r.items[equipmentID]
	if !ok {
		return domain.ErrEquipmentNotFound
	}
	e.Description = description
	return nil
}

func (r *stubEquipmentRepo) UpdateStatus(_ context.Context, equipmentID int64, status domain.EquipmentStatus) error {
	e, ok := r.items[equipmentID]
	if !ok {
		return domain.ErrEquipmentNotFound
	}
	e.Status = status
	return nil
}

func (r *stubEquipmentRepo) Delete(_ context.Context, equipmentID int64) error {
	if _, ok := r.items[equipmentID]; !ok {
		return domain.ErrEquipmentNotFound
	}
	delete(r.items, equipmentID)
	return nil
}

func (r *stubEquipmentRepo) CountByOwner(_ context.Context, ownerID int64) (int64, error) {
	var n int64
	for _, e := range r.items {
		if e.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

var clientA = domain.Identity{UserID: 1, Role: domain.RoleClient}
var clientB = domain.Identity{UserID: 2, Role: domain.RoleClient}

func registerEquipment(t *testing.T, svc *EquipmentService, caller domain.Identity, serial string) int64 {
	t.Helper()
	id, err := svc.Register(context.Background(), caller, ports.RegisterEquipmentInput{
		Name:         "Compresor",
		SerialNumber: serial,
		Location:     "Planta 1",
	})
	if err != nil {
		t.Fatalf("register equipment: %v", err)
	}
	return id
}

func TestEquipmentService_Register_ForcesPendingAndOwner(t *testing.T) {
	repo := newStubEquipmentRepo()
	svc := NewEquipmentService(repo, zerolog.Nop())

	id := registerEquipment(t, svc, clientA, "SN1")

	stored := repo.items[id]
	if stored.Status != domain.StatusPending {
		t.Fatalf("expected status pendiente, got %s", stored.Status)
	}
	if stored.OwnerID != clientA.UserID {
		t.Fatalf("expected owner %d, got %d", clientA.UserID, stored.OwnerID)
	}
}

func TestEquipmentService_ListByOwner_SelfOnly(t *testing.T) {
	repo := newStubEquipmentRepo()
	svc := NewEquipmentService(repo, zerolog.Nop())

	registerEquipment(t, svc, clientA, "SN1")

	// Client B asking for A's listing is forbidden even though the role
	// check passed upstream.
	if _, err := svc.ListByOwner(context.Background(), clientB, clientA.UserID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	items, err := svc.ListByOwner(context.Background(), clientA, clientA.UserID)
	if err != nil {
		t.Fatalf("list own equipment: %v", err)
	}
	if len(items) != 1 || items[0].SerialNumber != "SN1" {
		t.Fatalf("unexpected listing: %+v", items)
	}
}

func TestEquipmentService_UpdateDescription_OwnershipRecheck(t *testing.T) {
	repo := newStubEquipmentRepo()
	svc := NewEquipmentService(repo, zerolog.Nop())

	id := registerEquipment(t, svc, clientA, "SN1")

	if err := svc.UpdateDescription(context.Background(), clientB, id, "hacked"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.items[id].Description != "" {
		t.Fatalf("description mutated by forbidden request")
	}

	if err := svc.UpdateDescription(context.Background(), clientA, id, "revisado"); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if repo.items[id].Description != "revisado" {
		t.Fatalf("description not updated")
	}
}

func TestEquipmentService_UpdateDescription_NotFound(t *testing.T) {
	svc := NewEquipmentService(newStubEquipmentRepo(), zerolog.Nop())

	if err := svc.UpdateDescription(context.Background(), clientA, 99, "x"); err != domain.ErrEquipmentNotFound {
		t.Fatalf("expected ErrEquipmentNotFound, got %v", err)
	}
}

func TestEquipmentService_UpdateStatus_RejectsUnknownValue(t *testing.T) {
	repo := newStubEquipmentRepo()
	svc := NewEquipmentService(repo, zerolog.Nop())

	id := registerEquipment(t, svc, clientA, "SN1")

	if err := svc.UpdateStatus(context.Background(), id, "bogus"); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.items[id].Status != domain.StatusPending {
		t.Fatalf("status mutated by invalid request")
	}
}

func TestEquipmentService_UpdateStatus_AcceptsEnumValues(t *testing.T) {
	repo := newStubEquipmentRepo()
	svc := NewEquipmentService(repo, zerolog.Nop())

	id := registerEquipment(t, svc, clientA, "SN1")

	for _, status := range []string{"validado", "rechazado", "pendiente"} {
		if err := svc.UpdateStatus(context.Background(), id, status); err != nil {
			t.Fatalf("status %q: %v", status, err)
		}
		if string(repo.items[id].Status) != status {
			t.Fatalf("status not applied: want %s, got %s", status, repo.items[id].Status)
		}
	}
}

func TestEquipmentService_Delete_NotFound(t *testing.T) {
	svc := NewEquipmentService(newStubEquipmentRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), 42); err != domain.ErrEquipmentNotFound {
		t.Fatalf("expected ErrEquipmentNotFound, got %v", err)
	}
}
