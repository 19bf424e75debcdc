package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItem producto por debajo de su umbral mínimo.
type LowStockItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	StockBar1 decimal.Decimal `json:"stock_bar1"`
	StockBar2 decimal.Decimal `json:"stock_bar2"`
	MinStock  decimal.Decimal `json:"min_stock"`
}

// StatsResponse snapshot de estadísticas del inventario.
type StatsResponse struct {
	Products    int             `json:"products"`
	Categories  int             `json:"categories"`
	TotalBar1   decimal.Decimal `json:"total_bar1"`
	TotalBar2   decimal.Decimal `json:"total_bar2"`
	LowStock    []LowStockItem  `json:"low_stock"`
	RefreshedAt time.Time       `json:"refreshed_at"`
}
