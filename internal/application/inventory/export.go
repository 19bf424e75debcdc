package inventory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/domain/repository"
)

// Cabecera fija del CSV de stock. Separador ';' y BOM UTF-8 para que Excel
// lo abra bien de doble clic.
const csvHeader = "Category;Name;Volume(ml);Location1;Location2"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportConfig opciones del export.
type ExportConfig struct {
	Filename string // base sin extensión
	Locale   string // BCP-47 para la collation de nombres
}

// ExportUseCase genera el volcado del stock en CSV y PDF.
type ExportUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	report     StockReportGenerator
	cfg        ExportConfig
	coll       *collate.Collator
}

// NewExportUseCase construye el caso de uso de export.
func NewExportUseCase(products repository.ProductRepository, categories repository.CategoryRepository, report StockReportGenerator, cfg ExportConfig) *ExportUseCase {
	if cfg.Filename == "" {
		cfg.Filename = "stock"
	}
	return &ExportUseCase{
		products:   products,
		categories: categories,
		report:     report,
		cfg:        cfg,
		coll:       collate.New(language.Make(cfg.Locale)),
	}
}

// CSV genera el export y devuelve (contenido, nombre de archivo).
// Con el inventario vacío no hay archivo: ErrNothingToExport.
func (uc *ExportUseCase) CSV() ([]byte, string, error) {
	groups, err := uc.loadGroups()
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write([]string{"Category", "Name", "Volume(ml)", "Location1", "Location2"}); err != nil {
		return nil, "", fmt.Errorf("escribir cabecera: %w", err)
	}
	for _, g := range groups {
		categoryName := "" // celda vacía para productos sin categoría
		if g.Category != nil {
			categoryName = g.Category.Name
		}
		for _, p := range g.Products {
			record := []string{
				categoryName,
				p.Name,
				strconv.Itoa(p.VolumeML),
				p.StockBar1.StringFixed(1),
				p.StockBar2.StringFixed(1),
			}
			if err := w.Write(record); err != nil {
				return nil, "", fmt.Errorf("escribir fila: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), uc.filename("csv"), nil
}

// PDF genera el informe de stock vía el generador inyectado.
func (uc *ExportUseCase) PDF() ([]byte, string, error) {
	groups, err := uc.loadGroups()
	if err != nil {
		return nil, "", err
	}
	content, err := uc.report.GenerateStockReport(uc.cfg.Filename, groups)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	return content, uc.filename("pdf"), nil
}

// loadGroups carga la carta agrupada y ordena los productos de cada grupo por
// nombre con la collation configurada. Vacío -> ErrNothingToExport.
func (uc *ExportUseCase) loadGroups() ([]dto.CatalogGroup, error) {
	categories, err := uc.categories.List()
	if err != nil {
		return nil, fmt.Errorf("cargar categorías: %w", err)
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	if len(products) == 0 {
		return nil, domain.ErrNothingToExport
	}
	groups := groupProducts(categories, products)
	for i := range groups {
		items := groups[i].Products
		sort.SliceStable(items, func(a, b int) bool {
			return uc.coll.CompareString(items[a].Name, items[b].Name) < 0
		})
	}
	return groups, nil
}

func (uc *ExportUseCase) filename(ext string) string {
	return fmt.Sprintf("%s_%s.%s", uc.cfg.Filename, time.Now().Format("2006-01-02"), ext)
}
