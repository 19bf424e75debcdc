package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/application/inventory"
	"github.com/fullerpub/barstock-api/internal/domain"
)

// ExportHandler descarga del stock en CSV y PDF.
type ExportHandler struct {
	uc *inventory.ExportUseCase
}

// NewExportHandler construye el handler de export.
func NewExportHandler(uc *inventory.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// CSV godoc
// @Summary      Exportar el stock como CSV (BOM UTF-8, separador ';')
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "archivo CSV"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/export/csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	content, filename, err := h.uc.CSV()
	if err != nil {
		return exportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(content)
}

// PDF godoc
// @Summary      Exportar el stock como informe PDF
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string  "archivo PDF"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	content, filename, err := h.uc.PDF()
	if err != nil {
		return exportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(content)
}

func exportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNothingToExport) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOTHING_TO_EXPORT", Message: "el inventario está vacío"})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DATA_LOAD", Message: "no se pudo generar el export"})
}
