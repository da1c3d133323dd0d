package checklist

import (
	"context"

	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repositorios
// que necesita la transición a "entregado": el descuento de stock, la
// anotación del movimiento y el cambio de estado deben confirmarse juntos.
type TxRunner interface {
	RunChecklist(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		itemRepo repository.ChecklistItemRepository,
	) error) error
}
