package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
	"github.com/fullerpub/barstock-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// Create persiste un nuevo perfil. La PK sobre id (== id de cuenta) hace el
// alta idempotente por cuenta: un reintento devuelve ErrDuplicate, no duplica.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, full_name, role, bar_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		profile.ID, profile.Email, profile.FullName, profile.Role, profile.BarNumber,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID. (nil, nil) si no existe: el resolver
// depende de esa distinción.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	query := `
		SELECT id, email, full_name, role, bar_number, created_at, updated_at
		FROM profiles WHERE id = $1`
	var p entity.Profile
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Email, &p.FullName, &p.Role, &p.BarNumber, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by id: %w", err)
	}
	return &p, nil
}

// Count cuenta los perfiles existentes (decisión primer-usuario del bootstrap).
func (r *ProfileRepo) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM profiles`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}

// Update actualiza un perfil (reasignación admin de rol/bar/nombre).
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	query := `
		UPDATE profiles SET email = $2, full_name = $3, role = $4, bar_number = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		profile.ID, profile.Email, profile.FullName, profile.Role, profile.BarNumber, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// List lista todos los perfiles (gestión admin).
func (r *ProfileRepo) List() ([]*entity.Profile, error) {
	query := `
		SELECT id, email, full_name, role, bar_number, created_at, updated_at
		FROM profiles ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.BarNumber, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
