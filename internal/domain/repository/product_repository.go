package repository

import (
	"github.com/shopspring/decimal"

	"github.com/fullerpub/barstock-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock escribe solo la cantidad de un bar (edición puntual de celda).
	UpdateStock(productID string, bar int, qty decimal.Decimal) error
	Delete(id string) error
}
