package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
	"github.com/fullerpub/barstock-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, email_confirmed, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		account.ID, account.Email, account.PasswordHash, account.EmailConfirmed, account.Status,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID. (nil, nil) si no existe.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	return r.scanOne(`
		SELECT id, email, password_hash, email_confirmed, status,
		       COALESCE(reset_token, ''), COALESCE(reset_expires, 'epoch'::timestamptz),
		       created_at, updated_at
		FROM accounts WHERE id = $1`, id)
}

// GetByEmail obtiene una cuenta por email. (nil, nil) si no existe.
func (r *AccountRepo) GetByEmail(email string) (*entity.Account, error) {
	return r.scanOne(`
		SELECT id, email, password_hash, email_confirmed, status,
		       COALESCE(reset_token, ''), COALESCE(reset_expires, 'epoch'::timestamptz),
		       created_at, updated_at
		FROM accounts WHERE email = $1 LIMIT 1`, email)
}

// SetResetToken guarda el token de reset y su caducidad.
func (r *AccountRepo) SetResetToken(id, token string, expires time.Time) error {
	query := `
		UPDATE accounts SET reset_token = $2, reset_expires = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, token, expires)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	return nil
}

func (r *AccountRepo) scanOne(query string, arg any) (*entity.Account, error) {
	var a entity.Account
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.EmailConfirmed, &a.Status,
		&a.ResetToken, &a.ResetExpires,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}
