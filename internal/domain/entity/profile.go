package entity

import (
	"strings"
	"time"
)

// Roles válidos para Profile.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Números de bar válidos (dos puntos de stock físicos).
const (
	Bar1 = 1
	Bar2 = 2
)

// Profile vincula una Account con un rol y un bar asignado. Su ID es el ID de
// la Account (clave determinista: un reintento de alta no duplica filas).
// Se crea una sola vez por cuenta, vía el resolver; nunca se borra.
type Profile struct {
	ID        string // == Account.ID
	Email     string
	FullName  string
	Role      string // admin, staff
	BarNumber int    // 1 o 2
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin indica si el perfil tiene rol de administrador.
func (p *Profile) IsAdmin() bool { return p.Role == RoleAdmin }

// DisplayNameFromEmail deriva un nombre visible a partir del email
// (parte local), usado al crear el perfil en el bootstrap.
func DisplayNameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

// ValidBar indica si el número de bar es uno de los dos puntos de stock.
func ValidBar(n int) bool { return n == Bar1 || n == Bar2 }
