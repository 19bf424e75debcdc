package entity

import "time"

// Estados válidos para Account.
const (
	AccountActive   = "active"
	AccountInactive = "inactive"
)

// Account es la identidad autenticable (email + password). Solo el flujo de
// auth la lee; el resto del sistema trabaja con Profile.
type Account struct {
	ID             string
	Email          string
	PasswordHash   string // bcrypt, nunca plano después de persistir
	EmailConfirmed bool
	Status         string // active, inactive
	ResetToken     string // vacío si no hay reset pendiente
	ResetExpires   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
