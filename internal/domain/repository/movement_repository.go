package repository

import (
	"time"

	"github.com/ong-capacita/logistica-api/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos. Campos en cero = sin filtro.
type MovementFilter struct {
	Type   string
	SKU    string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// MovementRepository define el puerto de persistencia del libro de movimientos.
// Append-only: no hay update ni delete de movimientos históricos.
type MovementRepository interface {
	// Create persiste el movimiento y asigna su ID secuencial.
	Create(movement *entity.Movement) error
	// List devuelve movimientos más recientes primero.
	List(filter MovementFilter) ([]*entity.Movement, error)
}
