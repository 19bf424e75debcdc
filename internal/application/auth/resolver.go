package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
	"github.com/fullerpub/barstock-api/internal/domain/repository"
	"github.com/fullerpub/barstock-api/pkg/logger"
)

// Resolver resuelve el perfil de una cuenta autenticada. Si la cuenta aún no
// tiene perfil lo crea: el primer perfil del sistema nace admin, los demás
// staff con bar 1 por defecto (un admin puede reasignarlos después).
//
// Secuencia lineal, sin recursión: lookup -> count -> insert -> re-read.
// La fila releída es la verdad; los valores sintetizados localmente no se
// devuelven nunca como definitivos.
//
// Carrera conocida: dos cuentas distintas que entran por primera vez a la vez
// pueden observar ambas count == 0 y quedar ambas como admin. La PK de
// profiles solo deduplica la misma cuenta; reclamar el puesto de primer admin
// de forma atómica requeriría soporte del almacén y queda fuera de este cliente.
type Resolver struct {
	profiles repository.ProfileRepository
	log      *logger.Logger
}

// NewResolver construye el resolver de perfiles.
func NewResolver(profiles repository.ProfileRepository, log *logger.Logger) *Resolver {
	return &Resolver{profiles: profiles, log: log}
}

// Resolve devuelve el perfil de la cuenta, creándolo si no existe.
// Cualquier fallo del almacén distinto de "no encontrado" se envuelve en
// domain.ErrProfileResolution: sin perfil no hay autorización segura.
func (r *Resolver) Resolve(accountID, email string) (*entity.Profile, error) {
	profile, err := r.profiles.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: lookup: %v", domain.ErrProfileResolution, err)
	}
	if profile != nil {
		return profile, nil
	}

	count, err := r.profiles.Count()
	if err != nil {
		return nil, fmt.Errorf("%w: count: %v", domain.ErrProfileResolution, err)
	}

	role := entity.RoleStaff
	if count == 0 {
		role = entity.RoleAdmin
	}
	now := time.Now()
	fresh := &entity.Profile{
		ID:        accountID, // clave determinista: reintentos no duplican
		Email:     email,
		FullName:  entity.DisplayNameFromEmail(email),
		Role:      role,
		BarNumber: entity.Bar1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.profiles.Create(fresh); err != nil && !errors.Is(err, domain.ErrDuplicate) {
		return nil, fmt.Errorf("%w: insert: %v", domain.ErrProfileResolution, err)
	}

	// Releer: la fila almacenada es la autoritativa, no la sintetizada.
	profile, err = r.profiles.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: re-read: %v", domain.ErrProfileResolution, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: el perfil no existe tras crearlo", domain.ErrProfileResolution)
	}

	if r.log != nil {
		r.log.Info().
			Str("profile_id", profile.ID).
			Str("role", profile.Role).
			Int("bar", profile.BarNumber).
			Msg("perfil creado en bootstrap")
	}
	return profile, nil
}
