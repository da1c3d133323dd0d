package dto

import (
	"time"

	"github.com/ong-capacita/logistica-api/internal/domain/entity"
)

// CreateCourseRequest body para POST /api/cursos.
type CreateCourseRequest struct {
	Name        string    `json:"nombre"`
	Type        string    `json:"tipo"`
	Date        time.Time `json:"fecha"`
	Place       string    `json:"lugar,omitempty"`
	Attendees   int       `json:"asistentes"`
	Responsible string    `json:"responsable,omitempty"`
	TemplateID  string    `json:"plantilla_checklist_id,omitempty"`
}

// UpdateCourseRequest body para PUT /api/cursos/:id. Campos ausentes no cambian.
type UpdateCourseRequest struct {
	Name        *string    `json:"nombre,omitempty"`
	Type        *string    `json:"tipo,omitempty"`
	Date        *time.Time `json:"fecha,omitempty"`
	Place       *string    `json:"lugar,omitempty"`
	Attendees   *int       `json:"asistentes,omitempty"`
	Responsible *string    `json:"responsable,omitempty"`
	Active      *bool      `json:"activo,omitempty"`
}

// CourseResponse representación HTTP de un curso.
type CourseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nombre"`
	Type        string    `json:"tipo"`
	Date        time.Time `json:"fecha"`
	Place       string    `json:"lugar,omitempty"`
	Attendees   int       `json:"asistentes"`
	Responsible string    `json:"responsable,omitempty"`
	Active      bool      `json:"activo"`
	TemplateID  string    `json:"plantilla_checklist_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCourseResponse mapea la entidad al DTO.
func NewCourseResponse(c *entity.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Name:        c.Name,
		Type:        c.Type,
		Date:        c.Date,
		Place:       c.Place,
		Attendees:   c.Attendees,
		Responsible: c.Responsible,
		Active:      c.Active,
		TemplateID:  c.TemplateID,
		CreatedAt:   c.CreatedAt,
	}
}
