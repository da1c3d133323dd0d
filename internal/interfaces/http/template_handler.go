package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ong-capacita/logistica-api/internal/application/checklist"
	"github.com/ong-capacita/logistica-api/internal/application/dto"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
)

// TemplateHandler maneja el catálogo de plantillas de checklist.
type TemplateHandler struct {
	catalog *checklist.TemplateCatalog
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(catalog *checklist.TemplateCatalog) *TemplateHandler {
	return &TemplateHandler{catalog: catalog}
}

// List godoc
// @Summary      Listar plantillas (integradas + de usuario)
// @Tags         plantillas
// @Produce      json
// @Success      200  {array}  dto.TemplateResponse
// @Router       /api/plantillas [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	templates, err := h.catalog.List(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, dto.NewTemplateResponse(t))
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener plantilla por ID
// @Tags         plantillas
// @Produce      json
// @Param        id  path  string  true  "ID de plantilla"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plantillas/{id} [get]
func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	template, err := h.catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewTemplateResponse(template))
}

// Create godoc
// @Summary      Crear plantilla de usuario
// @Tags         plantillas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TemplateRequest  true  "plantilla"
// @Success      201  {object}  dto.TemplateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plantillas [post]
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.TemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	template, err := h.catalog.Create(c.Context(), &entity.ChecklistTemplate{
		Name:       in.Name,
		CourseType: in.CourseType,
		Lines:      in.ToLines(),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTemplateResponse(template))
}

// Update godoc
// @Summary      Editar plantilla de usuario
// @Description  Rechazado si la plantilla está en uso por un curso.
// @Tags         plantillas
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de plantilla"
// @Param        body  body  dto.TemplateRequest  true  "plantilla"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/plantillas/{id} [put]
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	var in dto.TemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	template, err := h.catalog.Update(c.Context(), &entity.ChecklistTemplate{
		ID:         c.Params("id"),
		Name:       in.Name,
		CourseType: in.CourseType,
		Lines:      in.ToLines(),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewTemplateResponse(template))
}

// Delete godoc
// @Summary      Eliminar plantilla de usuario
// @Description  Rechazado si la plantilla está en uso por un curso.
// @Tags         plantillas
// @Param        id  path  string  true  "ID de plantilla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/plantillas/{id} [delete]
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
