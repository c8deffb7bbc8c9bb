package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registrotec/equipos-api/internal/core/domain"
)

type EquipmentRepository struct {
	db *pgxpool.Pool
}

func NewEquipmentRepository(db *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, equipment *domain.Equipment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO equipos
			(nombre_equipo, descripcion, estado_equipo, id_cliente,
			 numero_serie, ubicacion, anio_fabricacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_equipo`,
		equipment.Name, equipment.Description, equipment.Status,
		equipment.OwnerID, equipment.SerialNumber, equipment.Location,
		equipment.ManufactureYear).
		Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert equipment: %w", err)
	}
	return id, nil
}

func (r *EquipmentRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Equipment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id_equipo, nombre_equipo, descripcion, estado_equipo,
		       numero_serie, ubicacion, anio_fabricacion
		FROM equipos
		WHERE id_cliente = $1
		ORDER BY id_equipo`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list equipment by owner: %w", err)
	}
	defer rows.Close()

	var items []*domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		e.OwnerID = ownerID
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Status,
			&e.SerialNumber, &e.Location, &e.ManufactureYear); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) ListAll(ctx context.Context) ([]*domain.Equipment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id_equipo, e.nombre_equipo, e.descripcion, e.estado_equipo,
		       e.id_cliente, e.numero_serie, e.ubicacion, e.anio_fabricacion,
		       u.nombre, u.apellido, u.email
		FROM equipos e
		JOIN usuarios u ON e.id_cliente = u.id_usuario
		ORDER BY e.id_equipo`)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var items []*domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Status,
			&e.OwnerID, &e.SerialNumber, &e.Location, &e.ManufactureYear,
			&e.OwnerFirstName, &e.OwnerLastName, &e.OwnerEmail); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) FindOwnerID(ctx context.Context, equipmentID int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(ctx,
		`SELECT id_cliente FROM equipos WHERE id_equipo = $1`, equipmentID).
		Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrEquipmentNotFound
		}
		return 0, fmt.Errorf("find equipment owner: %w", err)
	}
	return ownerID, nil
}

func (r *EquipmentRepository) UpdateDescription(ctx context.Context, equipmentID int64, description string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE equipos SET descripcion = $1 WHERE id_equipo = $2`,
		description, equipmentID)
	if err != nil {
		return fmt.Errorf("update description: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, equipmentID int64, status domain.EquipmentStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE equipos SET estado_equipo = $1 WHERE id_equipo = $2`,
		status, equipmentID)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, equipmentID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM equipos WHERE id_equipo = $1`, equipmentID)
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM equipos WHERE id_cliente = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count equipment: %w", err)
	}
	return n, nil
}
