package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es una referencia del inventario con stock por bar. Las cantidades
// son decimales: una botella abierta cuenta como fracción.
type Product struct {
	ID         string
	CategoryID string // vacío o inexistente -> "sin categoría"
	Name       string
	VolumeML   int             // volumen del envase en mililitros
	StockBar1  decimal.Decimal // cantidad en bar 1
	StockBar2  decimal.Decimal // cantidad en bar 2
	MinStock   decimal.Decimal // umbral de alerta; cero = sin umbral
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StockAt devuelve la cantidad del bar indicado.
func (p *Product) StockAt(bar int) decimal.Decimal {
	if bar == Bar2 {
		return p.StockBar2
	}
	return p.StockBar1
}

// SetStockAt fija la cantidad del bar indicado.
func (p *Product) SetStockAt(bar int, qty decimal.Decimal) {
	if bar == Bar2 {
		p.StockBar2 = qty
		return
	}
	p.StockBar1 = qty
}

// BelowMinimum indica si algún bar está por debajo del umbral configurado.
func (p *Product) BelowMinimum() bool {
	if p.MinStock.IsZero() {
		return false
	}
	return p.StockBar1.LessThan(p.MinStock) || p.StockBar2.LessThan(p.MinStock)
}
