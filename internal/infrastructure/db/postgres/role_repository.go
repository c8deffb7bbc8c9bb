package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registrotec/equipos-api/internal/core/domain"
)

// RoleRepository reads the static roles reference table. The access guard
// calls FindNameByID once per protected request, so both queries stay
// single-row lookups with no transaction.
type RoleRepository struct {
	db *pgxpool.Pool
}

func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindNameByID(ctx context.Context, roleID int64) (string, error) {
	var name string
	err := r.db.QueryRow(ctx,
		`SELECT nombre_rol FROM roles WHERE id_rol = $1`, roleID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrInvalidRole
		}
		return "", fmt.Errorf("find role name: %w", err)
	}
	return name, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.QueryRow(ctx,
		`SELECT id_rol, nombre_rol FROM roles WHERE nombre_rol = $1`, name).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidRole
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &role, nil
}
