package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registrotec/equipos-api/internal/core/domain"
)

// uniqueViolation is the postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO usuarios
			(nombre, apellido, email, password, telefono, id_rol,
			 rut_empresa, nombre_empresa, direccion_empresa)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id_usuario`,
		user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Phone, user.RoleID,
		user.CompanyTaxID, user.CompanyName, user.CompanyAddress).
		Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, domain.ErrEmailTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `
		SELECT u.id_usuario, u.nombre, u.apellido, u.email, u.password,
		       u.telefono, u.id_rol, r.nombre_rol
		FROM usuarios u
		JOIN roles r ON u.id_rol = r.id_rol
		WHERE u.email = $1`, email).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
			&u.Phone, &u.RoleID, &u.RoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `
		SELECT id_usuario, nombre, apellido, email, telefono,
		       rut_empresa, nombre_empresa, direccion_empresa, id_rol
		FROM usuarios
		WHERE id_usuario = $1`, id).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone,
			&u.CompanyTaxID, &u.CompanyName, &u.CompanyAddress, &u.RoleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id_usuario, u.nombre, u.apellido, u.email, u.telefono,
		       u.rut_empresa, u.nombre_empresa, u.direccion_empresa,
		       r.nombre_rol, u.id_rol
		FROM usuarios u
		JOIN roles r ON u.id_rol = r.id_rol
		ORDER BY u.id_usuario`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone,
			&u.CompanyTaxID, &u.CompanyName, &u.CompanyAddress,
			&u.RoleName, &u.RoleID); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE usuarios
		SET nombre = $1, apellido = $2, telefono = $3,
		    rut_empresa = $4, nombre_empresa = $5, direccion_empresa = $6
		WHERE id_usuario = $7`,
		user.FirstName, user.LastName, user.Phone,
		user.CompanyTaxID, user.CompanyName, user.CompanyAddress, user.ID)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID, roleID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE usuarios SET id_rol = $1 WHERE id_usuario = $2`, roleID, userID)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM usuarios WHERE id_usuario = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
