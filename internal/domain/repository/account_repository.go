package repository

import (
	"time"

	"github.com/fullerpub/barstock-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
// Los Get* devuelven (nil, nil) cuando la cuenta no existe; un error solo
// señala fallo del almacén.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByEmail(email string) (*entity.Account, error)
	SetResetToken(id, token string, expires time.Time) error
}
