package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
	"github.com/fullerpub/barstock-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías (acciones del panel admin).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El nombre es único (comparación sin mayúsculas).
// Si no llega order_index se coloca al final.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	maxOrder := 0
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return nil, domain.ErrDuplicate
		}
		if c.OrderIndex > maxOrder {
			maxOrder = c.OrderIndex
		}
	}
	orderIndex := in.OrderIndex
	if orderIndex <= 0 {
		orderIndex = maxOrder + 1
	}
	now := time.Now()
	category := &entity.Category{
		ID:         uuid.New().String(),
		Name:       name,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías ordenadas por order_index.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Delete elimina una categoría. Sus productos pasan a "sin categoría", no se
// borran en cascada.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		OrderIndex: c.OrderIndex,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
