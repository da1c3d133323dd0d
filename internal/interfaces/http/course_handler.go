package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ong-capacita/logistica-api/internal/application/course"
	"github.com/ong-capacita/logistica-api/internal/application/dto"
)

// CourseHandler maneja el ciclo de vida de los cursos.
type CourseHandler struct {
	uc *course.UseCase
}

// NewCourseHandler construye el handler.
func NewCourseHandler(uc *course.UseCase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

// List godoc
// @Summary      Listar cursos
// @Tags         cursos
// @Produce      json
// @Success      200  {array}  dto.CourseResponse
// @Router       /api/cursos [get]
func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, co := range courses {
		out = append(out, dto.NewCourseResponse(co))
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener curso por ID
// @Tags         cursos
// @Produce      json
// @Param        id  path  string  true  "ID de curso"
// @Success      200  {object}  dto.CourseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cursos/{id} [get]
func (h *CourseHandler) Get(c *fiber.Ctx) error {
	co, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewCourseResponse(co))
}

// Create godoc
// @Summary      Crear curso
// @Description  Con plantilla referenciada se genera además su checklist
//               dimensionado por asistentes.
// @Tags         cursos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCourseRequest  true  "curso"
// @Success      201  {object}  dto.CourseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cursos [post]
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCourseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	co, err := h.uc.Create(c.Context(), course.CreateInput{
		Name:        in.Name,
		Type:        in.Type,
		Date:        in.Date,
		Place:       in.Place,
		Attendees:   in.Attendees,
		Responsible: in.Responsible,
		TemplateID:  in.TemplateID,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewCourseResponse(co))
}

// Update godoc
// @Summary      Editar curso
// @Tags         cursos
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de curso"
// @Param        body  body  dto.UpdateCourseRequest  true  "campos a cambiar"
// @Success      200  {object}  dto.CourseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cursos/{id} [put]
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCourseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	co, err := h.uc.Update(c.Context(), c.Params("id"), course.UpdateInput{
		Name:        in.Name,
		Type:        in.Type,
		Date:        in.Date,
		Place:       in.Place,
		Attendees:   in.Attendees,
		Responsible: in.Responsible,
		Active:      in.Active,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewCourseResponse(co))
}

// Delete godoc
// @Summary      Eliminar curso
// @Description  Elimina también su checklist en cascada.
// @Tags         cursos
// @Param        id  path  string  true  "ID de curso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cursos/{id} [delete]
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
