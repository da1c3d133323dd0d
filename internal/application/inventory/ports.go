package inventory

import (
	"context"

	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios
// atados a esa tx. Garantiza que stock y libro de movimientos cambien juntos
// o no cambien.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error) error
}
