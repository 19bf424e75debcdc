// Package pdf genera el informe de stock en PDF con Maroto v2: una tabla por
// categoría (Producto | Vol | Bar 1 | Bar 2) y totales por bar al final.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/application/inventory"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventory.StockReportGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa inventory.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(title string, groups []dto.CatalogGroup) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	totalBar1 := decimal.Zero
	totalBar2 := decimal.Zero
	for _, group := range groups {
		m.AddRows(groupTitleRow(group))
		m.AddRows(tableHeaderRow())
		for _, p := range group.Products {
			m.AddRows(productRow(p))
			totalBar1 = totalBar1.Add(p.StockBar1)
			totalBar2 = totalBar2.Add(p.StockBar2)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totalBar1, totalBar2))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("maroto generate: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New(title, props.Text{
			Size: 14, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Left,
		})),
		col.New(4).Add(text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
			Size: 9, Color: colorGray, Align: align.Right, Top: 2,
		})),
	)
}

func groupTitleRow(group dto.CatalogGroup) core.Row {
	name := "Sin categoría"
	if group.Category != nil {
		name = group.Category.Name
	}
	return row.New(8).Add(
		col.New(12).Add(text.New(name, props.Text{
			Size: 11, Style: fontstyle.Bold, Top: 2, Align: align.Left,
		})),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray}
	headerRight := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray, Align: align.Right}
	return row.New(6).Add(
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Vol (ml)", headerRight)),
		col.New(2).Add(text.New("Bar 1", headerRight)),
		col.New(2).Add(text.New("Bar 2", headerRight)),
	)
}

func productRow(p dto.ProductResponse) core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	return row.New(5).Add(
		col.New(6).Add(text.New(p.Name, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.VolumeML), cellRight)),
		col.New(2).Add(text.New(p.StockBar1.StringFixed(1), cellRight)),
		col.New(2).Add(text.New(p.StockBar2.StringFixed(1), cellRight)),
	)
}

func totalsRow(bar1, bar2 decimal.Decimal) core.Row {
	bold := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	return row.New(7).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{Size: 9, Style: fontstyle.Bold})),
		col.New(2).Add(text.New(bar1.StringFixed(1), bold)),
		col.New(2).Add(text.New(bar2.StringFixed(1), bold)),
	)
}
