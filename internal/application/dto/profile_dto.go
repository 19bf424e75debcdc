package dto

import "time"

// ProfileResponse salida de un perfil.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	BarNumber int       `json:"bar_number"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest entrada admin para reasignar rol o bar.
type UpdateProfileRequest struct {
	Role      *string `json:"role" validate:"omitempty,oneof=admin staff"`
	BarNumber *int    `json:"bar_number" validate:"omitempty,oneof=1 2"`
	FullName  *string `json:"full_name" validate:"omitempty,max=200"`
}

// ProfileListResponse lista de perfiles (gestión admin).
type ProfileListResponse struct {
	Items []ProfileResponse `json:"items"`
}
