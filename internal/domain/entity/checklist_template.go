package entity

import "github.com/shopspring/decimal"

// TemplateLine es una línea de plantilla: un insumo requerido por asistente.
// QtyPerAttendee admite fracciones (ej. 0.05 extintores por persona).
type TemplateLine struct {
	Item           string          `json:"item"`
	Unit           string          `json:"unidad"`
	QtyPerAttendee decimal.Decimal `json:"cantidad_por_persona"`
	SKU            string          `json:"sku,omitempty"`
}

// ChecklistTemplate es una plantilla reutilizable de insumos por tipo de curso.
// Las líneas mantienen el orden de definición.
type ChecklistTemplate struct {
	ID         string
	Name       string
	CourseType string
	Lines      []TemplateLine
}
