package entity

import "time"

// Category agrupa productos en la carta. OrderIndex fija el orden de
// presentación; los productos cuya categoría no existe se muestran como
// "sin categoría", no es un error.
type Category struct {
	ID         string
	Name       string
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
