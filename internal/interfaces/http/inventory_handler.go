package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinivet/pos-api/internal/application/dto"
	"github.com/clinivet/pos-api/internal/application/pos"
	"github.com/clinivet/pos-api/pkg/logger"
)

// InventoryHandler lectura del inventario para la pantalla de caja (protegido).
type InventoryHandler struct {
	uc  *pos.InventoryQueryUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *pos.InventoryQueryUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// List devuelve los productos con stock y precio actuales.
// GET /api/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	resp, err := h.uc.List(limit, offset)
	if err != nil {
		h.log.Error().Err(err).Msg("listar inventario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error interno del servidor"})
	}
	return c.JSON(resp)
}
