package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ong-capacita/logistica-api/internal/application/dto"
	"github.com/ong-capacita/logistica-api/internal/application/inventory"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

// MovementHandler maneja la consulta del libro de movimientos (solo lectura:
// el libro es append-only y solo escribe el caso de uso de ajuste).
type MovementHandler struct {
	ledger *inventory.AdjustStockUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledger *inventory.AdjustStockUseCase) *MovementHandler {
	return &MovementHandler{ledger: ledger}
}

// List godoc
// @Summary      Listar movimientos
// @Description  Más recientes primero. Filtros: tipo (entrada|salida), sku,
//               ventana de tiempo from/to en RFC3339.
// @Tags         movimientos
// @Produce      json
// @Param        tipo    query  string  false  "entrada | salida"
// @Param        sku     query  string  false  "filtrar por SKU"
// @Param        from    query  string  false  "desde (RFC3339)"
// @Param        to      query  string  false  "hasta (RFC3339)"
// @Param        limit   query  int     false  "máximo de filas"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()

	filter := repository.MovementFilter{
		Type:   c.Query("tipo"),
		SKU:    c.Query("sku"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badBody(c)
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badBody(c)
		}
		filter.To = &t
	}

	movements, err := h.ledger.ListMovements(c.Context(), filter)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.NewMovementResponse(m))
	}
	return c.JSON(out)
}
