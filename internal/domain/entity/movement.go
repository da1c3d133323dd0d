package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntrada = "entrada" // ingreso a bodega
	MovementTypeSalida  = "salida"  // egreso de bodega
)

// ValidMovementType valida el tipo de movimiento.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeSalida
}

// Movement es una anotación inmutable del libro de movimientos: un cambio de
// stock ya aplicado. El ID es secuencial y lo asigna el repositorio; el libro
// es append-only, sin updates ni deletes.
type Movement struct {
	ID        int64
	Date      time.Time
	Type      string // entrada | salida
	SKU       string
	Quantity  int    // siempre positivo; el signo lo da Type
	Reference string // texto libre: curso, nota, etc. Opcional.
	User      string
}
