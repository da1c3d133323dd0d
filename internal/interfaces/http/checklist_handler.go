package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ong-capacita/logistica-api/internal/application/checklist"
	"github.com/ong-capacita/logistica-api/internal/application/dto"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
)

// ChecklistHandler maneja los ítems de checklist y su generación desde plantilla.
type ChecklistHandler struct {
	items     *checklist.ItemUseCase
	generator *checklist.GeneratorUseCase
}

// NewChecklistHandler construye el handler.
func NewChecklistHandler(items *checklist.ItemUseCase, generator *checklist.GeneratorUseCase) *ChecklistHandler {
	return &ChecklistHandler{items: items, generator: generator}
}

// List godoc
// @Summary      Listar ítems de checklist
// @Tags         checklist
// @Produce      json
// @Param        curso_id  query  string  false  "filtrar por curso"
// @Success      200  {array}  dto.ChecklistItemResponse
// @Router       /api/checklist-items [get]
func (h *ChecklistHandler) List(c *fiber.Ctx) error {
	var items []*entity.ChecklistItem
	var err error
	if courseID := c.Query("curso_id"); courseID != "" {
		items, err = h.items.ListByCourse(c.Context(), courseID)
	} else {
		items, err = h.items.List(c.Context())
	}
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.ChecklistItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, dto.NewChecklistItemResponse(i))
	}
	return c.JSON(out)
}

// Generate godoc
// @Summary      Generar checklist desde plantilla
// @Description  Expande la plantilla en ítems dimensionados por asistentes
//               (techo con piso de 1 unidad). Aditivo: limpiar antes si se
//               quiere reemplazar (DELETE /api/checklist-items?curso_id=).
// @Tags         checklist
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateChecklistRequest  true  "curso, plantilla, asistentes"
// @Success      201  {array}   dto.ChecklistItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/checklist-items/generate [post]
func (h *ChecklistHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateChecklistRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	items, err := h.generator.Generate(c.Context(), in.CourseID, in.TemplateID, in.Attendees)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.ChecklistItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, dto.NewChecklistItemResponse(i))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Create godoc
// @Summary      Agregar ítem manual
// @Tags         checklist
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChecklistItemRequest  true  "ítem"
// @Success      201  {object}  dto.ChecklistItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/checklist-items [post]
func (h *ChecklistHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChecklistItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.items.Create(c.Context(), checklist.CreateItemInput{
		CourseID:       in.CourseID,
		SKU:            in.SKU,
		Item:           in.Item,
		Unit:           in.Unit,
		PlannedQty:     in.PlannedQty,
		QtyPerAttendee: in.QtyPerAttendee,
		Origin:         in.Origin,
		Status:         in.Status,
		Notes:          in.Notes,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewChecklistItemResponse(item))
}

// Update godoc
// @Summary      Editar ítem (notas, cantidad, estado)
// @Description  Un cambio de estado pasa por la máquina pendiente -> listo ->
//               entregado. Entregar un ítem de bodega descuenta stock y anota
//               la salida en la misma transacción.
// @Tags         checklist
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de ítem"
// @Param        body  body  dto.UpdateChecklistItemRequest  true  "campos a cambiar"
// @Success      200  {object}  dto.ChecklistItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checklist-items/{id} [put]
func (h *ChecklistHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateChecklistItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.items.Update(c.Context(), c.Params("id"), checklist.UpdateItemInput{
		Status:     in.Status,
		Notes:      in.Notes,
		PlannedQty: in.PlannedQty,
		User:       requestUser(c, in.User),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewChecklistItemResponse(item))
}

// Delete godoc
// @Summary      Eliminar ítem
// @Tags         checklist
// @Param        id  path  string  true  "ID de ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/checklist-items/{id} [delete]
func (h *ChecklistHandler) Delete(c *fiber.Ctx) error {
	if err := h.items.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteByCourse godoc
// @Summary      Limpiar el checklist de un curso
// @Tags         checklist
// @Param        curso_id  query  string  true  "curso"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/checklist-items [delete]
func (h *ChecklistHandler) DeleteByCourse(c *fiber.Ctx) error {
	courseID := c.Query("curso_id")
	if courseID == "" {
		return badBody(c)
	}
	if err := h.items.DeleteAllForCourse(c.Context(), courseID); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
