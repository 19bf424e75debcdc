package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	OrderIndex int    `json:"order_index"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CategoryListResponse lista de categorías ordenadas por order_index.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
