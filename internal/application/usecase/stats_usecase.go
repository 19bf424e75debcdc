package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/domain/repository"
	"github.com/fullerpub/barstock-api/pkg/logger"
)

// StatsUseCase calcula el snapshot de estadísticas del inventario y lo cachea.
// Un ticker en background lo refresca con el intervalo configurado (el
// AUTO_REFRESH de cinco minutos del cliente original, movido al servidor).
type StatsUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository

	mu       sync.RWMutex
	snapshot *dto.StatsResponse
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *StatsUseCase {
	return &StatsUseCase{products: products, categories: categories}
}

// Snapshot devuelve el último snapshot cacheado, calculándolo si aún no hay.
func (uc *StatsUseCase) Snapshot() (*dto.StatsResponse, error) {
	uc.mu.RLock()
	cached := uc.snapshot
	uc.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}
	return uc.Refresh()
}

// Refresh recalcula el snapshot desde el almacén y actualiza la cache.
func (uc *StatsUseCase) Refresh() (*dto.StatsResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.List()
	if err != nil {
		return nil, err
	}

	snap := &dto.StatsResponse{
		Products:    len(products),
		Categories:  len(categories),
		TotalBar1:   decimal.Zero,
		TotalBar2:   decimal.Zero,
		LowStock:    []dto.LowStockItem{},
		RefreshedAt: time.Now(),
	}
	for _, p := range products {
		snap.TotalBar1 = snap.TotalBar1.Add(p.StockBar1)
		snap.TotalBar2 = snap.TotalBar2.Add(p.StockBar2)
		if p.BelowMinimum() {
			snap.LowStock = append(snap.LowStock, dto.LowStockItem{
				ProductID: p.ID,
				Name:      p.Name,
				StockBar1: p.StockBar1,
				StockBar2: p.StockBar2,
				MinStock:  p.MinStock,
			})
		}
	}

	uc.mu.Lock()
	uc.snapshot = snap
	uc.mu.Unlock()
	return snap, nil
}

// StartRefresher refresca la cache periódicamente hasta que el contexto se
// cancele. Pensado para lanzarse como goroutine desde main.
func (uc *StatsUseCase) StartRefresher(ctx context.Context, interval time.Duration, log *logger.Logger) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.Refresh(); err != nil && log != nil {
				log.Warn().Err(err).Msg("refresco de estadísticas fallido")
			}
		}
	}
}
