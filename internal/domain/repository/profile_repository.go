package repository

import "github.com/fullerpub/barstock-api/internal/domain/entity"

// ProfileRepository define el puerto de persistencia para Profile (DIP).
// GetByID devuelve (nil, nil) si el perfil no existe: el resolver necesita
// distinguir "no encontrado" de un fallo real del almacén.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	Count() (int, error)
	Update(profile *entity.Profile) error
	List() ([]*entity.Profile, error)
}
