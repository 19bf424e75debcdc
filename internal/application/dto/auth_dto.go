package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el perfil resuelto.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// RegisterRequest entrada para crear una cuenta. No crea el perfil: el perfil
// lo crea el resolver en el primer login.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AccountResponse salida de una cuenta (sin password).
type AccountResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
	Status         string `json:"status"`
}

// ResetPasswordRequest solicitud de restablecimiento de contraseña.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}
