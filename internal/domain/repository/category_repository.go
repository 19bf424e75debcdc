package repository

import "github.com/fullerpub/barstock-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error) // ordenado por order_index
	Delete(id string) error
}
