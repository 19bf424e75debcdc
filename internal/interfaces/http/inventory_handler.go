package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/application/inventory"
	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/obs"
)

// InventoryHandler expone la carta agrupada y la edición de stock por celda.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Catalog godoc
// @Summary      Carta completa: categorías en orden con sus productos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *InventoryHandler) Catalog(c *fiber.Ctx) error {
	out, err := h.uc.Catalog()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DATA_LOAD", Message: "no se pudo cargar el inventario"})
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Editar el stock de un producto en un bar
// @Description  El cuerpo de respuesta siempre trae la fila autoritativa del
// @Description  almacén, también en los rechazos (403) y fallos de persistencia (502).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateStockRequest  true  "bar y cantidad"
// @Success      200   {object}  dto.StockEditResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.StockEditResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.StockEditResponse
// @Router       /api/products/{id}/stock [patch]
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.uc.UpdateStock(GetSession(c), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bar debe ser 1 o 2 y quantity no negativa"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrEditRejected):
			obs.RecordStockEdit(obs.EditRejected)
			// La fila autoritativa viaja en el cuerpo del 403.
			out.Code = "EDIT_REJECTED"
			return c.Status(fiber.StatusForbidden).JSON(out)
		case errors.Is(err, domain.ErrEditPersist):
			obs.RecordStockEdit(obs.EditPersistError)
			if out != nil {
				out.Code = "EDIT_PERSIST"
				return c.Status(fiber.StatusBadGateway).JSON(out)
			}
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EDIT_PERSIST", Message: "no se pudo guardar el cambio"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DATA_LOAD", Message: "no se pudo leer el producto"})
	}

	obs.RecordStockEdit(obs.EditAllowed)
	return c.JSON(out)
}
