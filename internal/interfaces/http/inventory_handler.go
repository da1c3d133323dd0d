package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ong-capacita/logistica-api/internal/application/dto"
	"github.com/ong-capacita/logistica-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP de inventario y ajustes.
type InventoryHandler struct {
	uc     *inventory.InventoryUseCase
	ledger *inventory.AdjustStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase, ledger *inventory.AdjustStockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, ledger: ledger}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventario
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventario [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	records, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.InventoryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.NewInventoryResponse(r))
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener ítem por SKU
// @Tags         inventario
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{sku} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	record, err := h.uc.Get(c.Context(), c.Params("sku"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewInventoryResponse(record))
}

// Create godoc
// @Summary      Registrar SKU nuevo
// @Description  Con stock inicial > 0 se anota además un movimiento de entrada sintético.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "ítem"
// @Success      201  {object}  dto.InventoryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventario [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	record, err := h.uc.Create(c.Context(), inventory.CreateInput{
		SKU:      in.SKU,
		Name:     in.Name,
		Size:     in.Size,
		Color:    in.Color,
		Stock:    in.Stock,
		StockMin: in.StockMin,
		Location: in.Location,
		User:     requestUser(c, ""),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewInventoryResponse(record))
}

// Update godoc
// @Summary      Editar campos descriptivos de un SKU
// @Description  El stock no se edita por aquí; solo vía /api/inventario/ajustar.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        sku   path  string                      true  "SKU"
// @Param        body  body  dto.UpdateInventoryRequest  true  "campos a cambiar"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{sku} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	record, err := h.uc.UpdateFields(c.Context(), c.Params("sku"), inventory.UpdateFieldsInput{
		Name:     in.Name,
		Size:     in.Size,
		Color:    in.Color,
		StockMin: in.StockMin,
		Location: in.Location,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewInventoryResponse(record))
}

// Delete godoc
// @Summary      Eliminar un SKU
// @Tags         inventario
// @Param        sku  path  string  true  "SKU"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{sku} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("sku")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Adjust godoc
// @Summary      Ajustar stock (entrada o salida)
// @Description  Único camino de mutación de stock: valida, aplica el delta y
//               anota el movimiento en la misma transacción.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "sku, cantidad, tipo, referencia"
// @Success      200  {object}  dto.AdjustStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventario/ajustar [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.ledger.Adjust(c.Context(), inventory.AdjustInput{
		SKU:       in.SKU,
		Quantity:  in.Quantity,
		Type:      in.Type,
		Reference: in.Reference,
		User:      requestUser(c, in.User),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.AdjustStockResponse{
		Inventory: dto.NewInventoryResponse(result.Record),
		Movement:  dto.NewMovementResponse(result.Movement),
	})
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Ítems con stock <= stock_min, los más críticos primero.
// @Tags         inventario
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventario/alertas [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	records, err := h.uc.ListLowStock(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.InventoryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.NewInventoryResponse(r))
	}
	return c.JSON(out)
}
