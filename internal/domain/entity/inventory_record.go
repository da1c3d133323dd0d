package entity

import "time"

// InventoryRecord representa un ítem de bodega identificado por SKU (llave natural).
// Stock nunca es negativo y solo lo muta el libro de movimientos; los demás
// campos son descriptivos y se editan directo.
type InventoryRecord struct {
	SKU       string
	Name      string
	Size      string // talla, opcional
	Color     string // opcional
	Stock     int
	StockMin  int
	Location  string // ubicación en bodega, opcional
	UpdatedAt time.Time
}

// IsLowStock indica si el ítem está en o bajo su umbral de alerta.
func (r *InventoryRecord) IsLowStock() bool {
	return r.Stock <= r.StockMin
}
