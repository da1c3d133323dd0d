package dto

import (
	"github.com/shopspring/decimal"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
)

// TemplateLineDTO línea de plantilla en la API.
type TemplateLineDTO struct {
	Item           string          `json:"item"`
	Unit           string          `json:"unidad"`
	QtyPerAttendee decimal.Decimal `json:"cantidad_por_persona"`
	SKU            string          `json:"sku,omitempty"`
}

// TemplateRequest body para POST/PUT /api/plantillas.
type TemplateRequest struct {
	Name       string            `json:"nombre"`
	CourseType string            `json:"tipo"`
	Lines      []TemplateLineDTO `json:"items"`
}

// ToLines convierte las líneas del request a entidades, en orden.
func (r TemplateRequest) ToLines() []entity.TemplateLine {
	lines := make([]entity.TemplateLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, entity.TemplateLine{
			Item:           l.Item,
			Unit:           l.Unit,
			QtyPerAttendee: l.QtyPerAttendee,
			SKU:            l.SKU,
		})
	}
	return lines
}

// TemplateResponse representación HTTP de una plantilla.
type TemplateResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"nombre"`
	CourseType string            `json:"tipo"`
	Lines      []TemplateLineDTO `json:"items"`
}

// NewTemplateResponse mapea la entidad al DTO.
func NewTemplateResponse(t *entity.ChecklistTemplate) TemplateResponse {
	lines := make([]TemplateLineDTO, 0, len(t.Lines))
	for _, l := range t.Lines {
		lines = append(lines, TemplateLineDTO{
			Item:           l.Item,
			Unit:           l.Unit,
			QtyPerAttendee: l.QtyPerAttendee,
			SKU:            l.SKU,
		})
	}
	return TemplateResponse{ID: t.ID, Name: t.Name, CourseType: t.CourseType, Lines: lines}
}

// GenerateChecklistRequest body para POST /api/checklist-items/generate.
type GenerateChecklistRequest struct {
	CourseID   string `json:"curso_id"`
	TemplateID string `json:"plantilla_id"`
	Attendees  int    `json:"asistentes"`
}

// CreateChecklistItemRequest body para POST /api/checklist-items.
type CreateChecklistItemRequest struct {
	CourseID       string           `json:"curso_id"`
	SKU            string           `json:"sku,omitempty"`
	Item           string           `json:"item"`
	Unit           string           `json:"unidad"`
	PlannedQty     int              `json:"qty_planificada"`
	QtyPerAttendee *decimal.Decimal `json:"cantidad_por_persona,omitempty"`
	Origin         string           `json:"origen,omitempty"`
	Status         string           `json:"estado,omitempty"`
	Notes          string           `json:"notas,omitempty"`
}

// UpdateChecklistItemRequest body para PUT /api/checklist-items/:id. Campos
// ausentes no cambian; un cambio de estado pasa por la máquina de estados.
type UpdateChecklistItemRequest struct {
	Status     *string `json:"estado,omitempty"`
	Notes      *string `json:"notas,omitempty"`
	PlannedQty *int    `json:"qty_planificada,omitempty"`
	User       string  `json:"usuario,omitempty"`
}

// ChecklistItemResponse representación HTTP de un ítem de checklist.
type ChecklistItemResponse struct {
	ID             string           `json:"id"`
	CourseID       string           `json:"curso_id"`
	SKU            string           `json:"sku,omitempty"`
	Item           string           `json:"item"`
	Unit           string           `json:"unidad"`
	PlannedQty     int              `json:"qty_planificada"`
	QtyPerAttendee *decimal.Decimal `json:"cantidad_por_persona,omitempty"`
	Origin         string           `json:"origen"`
	Status         string           `json:"estado"`
	Notes          string           `json:"notas,omitempty"`
}

// NewChecklistItemResponse mapea la entidad al DTO.
func NewChecklistItemResponse(i *entity.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		ID:             i.ID,
		CourseID:       i.CourseID,
		SKU:            i.SKU,
		Item:           i.Item,
		Unit:           i.Unit,
		PlannedQty:     i.PlannedQty,
		QtyPerAttendee: i.QtyPerAttendee,
		Origin:         i.Origin,
		Status:         i.Status,
		Notes:          i.Notes,
	}
}
