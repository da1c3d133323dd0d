package entity

import "github.com/shopspring/decimal"

// Origen del ítem: desde bodega propia o compra externa.
const (
	OriginBodega = "bodega"
	OriginCompra = "compra"
)

// Estados del ítem de checklist. La máquina avanza de a un paso y nunca
// retrocede: pendiente -> listo -> entregado.
const (
	StatusPendiente = "pendiente"
	StatusListo     = "listo"
	StatusEntregado = "entregado"
)

var statusRank = map[string]int{
	StatusPendiente: 0,
	StatusListo:     1,
	StatusEntregado: 2,
}

// ValidStatus valida el estado.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition indica si el paso from -> to es válido: exactamente el
// siguiente estado de la secuencia, sin saltos ni retrocesos.
func CanTransition(from, to string) bool {
	fr, ok1 := statusRank[from]
	tr, ok2 := statusRank[to]
	return ok1 && ok2 && tr == fr+1
}

// ChecklistItem es la instancia concreta de una línea de plantilla (o un
// agregado manual) para un curso. QtyPerAttendee se conserva solo para
// trazabilidad de cómo se derivó PlannedQty.
type ChecklistItem struct {
	ID             string
	CourseID       string
	SKU            string // opcional; presente implica Origin = bodega
	Item           string
	Unit           string
	PlannedQty     int
	QtyPerAttendee *decimal.Decimal // opcional
	Origin         string           // bodega | compra
	Status         string           // pendiente | listo | entregado
	Notes          string
}

// DrawsFromStock indica si entregar este ítem debe descontar inventario.
func (i *ChecklistItem) DrawsFromStock() bool {
	return i.Origin == OriginBodega && i.SKU != ""
}
