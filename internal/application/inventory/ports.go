package inventory

import "github.com/fullerpub/barstock-api/internal/application/dto"

// StockReportGenerator puerto para la representación PDF del stock.
// Lo implementa infrastructure/pdf; la interfaz evita acoplar el use case a maroto.
type StockReportGenerator interface {
	GenerateStockReport(title string, groups []dto.CatalogGroup) ([]byte, error)
}
