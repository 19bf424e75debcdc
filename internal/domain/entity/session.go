package entity

// Session es el resultado inmutable de la resolución de perfil, reconstruido
// por request desde los claims del JWT y pasado explícitamente a los use
// cases. Sustituye al estado global de sesión del cliente original.
type Session struct {
	UserID    string
	Role      string
	BarNumber int
}

// IsAdmin indica si la sesión pertenece a un administrador.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
