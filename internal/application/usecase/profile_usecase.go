package usecase

import (
	"time"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
	"github.com/fullerpub/barstock-api/internal/domain/repository"
)

// ProfileUseCase gestión de perfiles para el panel admin: listado y
// reasignación de rol/bar. Los perfiles no se borran nunca desde aquí.
type ProfileUseCase struct {
	repo repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// GetByID obtiene un perfil por ID (también lo usa /auth/me).
func (uc *ProfileUseCase) GetByID(id string) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return toProfileResponse(profile), nil
}

// List lista todos los perfiles.
func (uc *ProfileUseCase) List() (*dto.ProfileListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProfileResponse(p))
	}
	return &dto.ProfileListResponse{Items: items}, nil
}

// Update reasigna rol, bar o nombre de un perfil existente.
func (uc *ProfileUseCase) Update(id string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	if in.Role != nil {
		if *in.Role != entity.RoleAdmin && *in.Role != entity.RoleStaff {
			return nil, domain.ErrInvalidInput
		}
		profile.Role = *in.Role
	}
	if in.BarNumber != nil {
		if !entity.ValidBar(*in.BarNumber) {
			return nil, domain.ErrInvalidInput
		}
		profile.BarNumber = *in.BarNumber
	}
	if in.FullName != nil && *in.FullName != "" {
		profile.FullName = *in.FullName
	}
	profile.UpdatedAt = time.Now()
	if err := uc.repo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      p.Role,
		BarNumber: p.BarNumber,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
