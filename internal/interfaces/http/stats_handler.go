package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/application/usecase"
)

// StatsHandler snapshot cacheado de estadísticas del inventario.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler de estadísticas.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Snapshot godoc
// @Summary      Estadísticas del inventario (snapshot cacheado)
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Snapshot(c *fiber.Ctx) error {
	out, err := h.uc.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DATA_LOAD", Message: "no se pudieron calcular las estadísticas"})
	}
	return c.JSON(out)
}
