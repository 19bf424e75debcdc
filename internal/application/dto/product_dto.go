package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	VolumeML   int             `json:"volume_ml" validate:"min=0"`
	StockBar1  decimal.Decimal `json:"stock_bar1"`
	StockBar2  decimal.Decimal `json:"stock_bar2"`
	MinStock   decimal.Decimal `json:"min_stock"`
}

// UpdateProductRequest entrada para actualizar ficha de producto.
// Las cantidades de stock NO se tocan aquí: van por el endpoint de stock,
// que pasa por el gatekeeper.
type UpdateProductRequest struct {
	CategoryID *string          `json:"category_id"`
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	VolumeML   *int             `json:"volume_ml" validate:"omitempty,min=0"`
	MinStock   *decimal.Decimal `json:"min_stock"`
}

// ProductResponse salida de un producto con su stock por bar.
type ProductResponse struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	VolumeML   int             `json:"volume_ml"`
	StockBar1  decimal.Decimal `json:"stock_bar1"`
	StockBar2  decimal.Decimal `json:"stock_bar2"`
	MinStock   decimal.Decimal `json:"min_stock"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse lista plana de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// UpdateStockRequest edición puntual de una celda de stock.
type UpdateStockRequest struct {
	Bar      int             `json:"bar" validate:"required,oneof=1 2"`
	Quantity decimal.Decimal `json:"quantity"`
}

// StockEditResponse resultado de una edición: siempre incluye la fila
// autoritativa releída del almacén, también cuando la edición fue rechazada
// o la escritura falló (el cliente re-renderiza con esto). Code va vacío en
// el caso de éxito.
type StockEditResponse struct {
	Code    string          `json:"code,omitempty"`
	Product ProductResponse `json:"product"`
}

// CatalogGroup una categoría con sus productos (o el grupo "sin categoría").
type CatalogGroup struct {
	Category *CategoryResponse `json:"category"` // nil en el grupo sin categoría
	Products []ProductResponse `json:"products"`
}

// CatalogResponse la carta completa agrupada por categoría.
type CatalogResponse struct {
	Groups []CatalogGroup `json:"groups"`
}
