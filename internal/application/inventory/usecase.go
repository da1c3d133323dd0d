package inventory

import (
	"context"
	"time"

	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

// SystemUser identifica movimientos generados por el propio sistema
// (ej. el movimiento sintético al crear un ítem con stock inicial).
const SystemUser = "system@ong.cl"

// InventoryUseCase administra el ciclo de vida de los ítems de bodega.
// Nunca escribe stock fuera de una transacción del libro de movimientos.
type InventoryUseCase struct {
	invRepo  repository.InventoryRepository
	txRunner TxRunner
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(invRepo repository.InventoryRepository, txRunner TxRunner) *InventoryUseCase {
	return &InventoryUseCase{invRepo: invRepo, txRunner: txRunner}
}

// CreateInput entrada para registrar un SKU nuevo.
type CreateInput struct {
	SKU      string
	Name     string
	Size     string
	Color    string
	Stock    int
	StockMin int
	Location string
	User     string
}

// Create registra un SKU nuevo. Si el stock inicial es mayor a cero, anota en
// la misma transacción un movimiento de entrada sintético para que el libro
// quede consistente con el stock visible.
func (uc *InventoryUseCase) Create(ctx context.Context, input CreateInput) (*entity.InventoryRecord, error) {
	if input.SKU == "" || input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Stock < 0 || input.StockMin < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now()
	record := &entity.InventoryRecord{
		SKU:       input.SKU,
		Name:      input.Name,
		Size:      input.Size,
		Color:     input.Color,
		Stock:     input.Stock,
		StockMin:  input.StockMin,
		Location:  input.Location,
		UpdatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := invRepo.Create(record); err != nil {
			return err
		}
		if record.Stock == 0 {
			return nil
		}
		user := input.User
		if user == "" {
			user = SystemUser
		}
		return movRepo.Create(&entity.Movement{
			Date:      now,
			Type:      entity.MovementTypeEntrada,
			SKU:       record.SKU,
			Quantity:  record.Stock,
			Reference: "Creación de ítem",
			User:      user,
		})
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Get obtiene un ítem por SKU.
func (uc *InventoryUseCase) Get(ctx context.Context, sku string) (*entity.InventoryRecord, error) {
	record, err := uc.invRepo.Get(sku)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

// UpdateFieldsInput campos descriptivos editables. Nil = sin cambio.
// El stock no aparece aquí a propósito: solo muta vía AdjustStockUseCase.
type UpdateFieldsInput struct {
	Name     *string
	Size     *string
	Color    *string
	StockMin *int
	Location *string
}

// UpdateFields edita campos descriptivos y updated_at. No toca el stock.
func (uc *InventoryUseCase) UpdateFields(ctx context.Context, sku string, input UpdateFieldsInput) (*entity.InventoryRecord, error) {
	record, err := uc.invRepo.Get(sku)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}

	if input.Name != nil {
		record.Name = *input.Name
	}
	if input.Size != nil {
		record.Size = *input.Size
	}
	if input.Color != nil {
		record.Color = *input.Color
	}
	if input.StockMin != nil {
		if *input.StockMin < 0 {
			return nil, domain.ErrInvalidQuantity
		}
		record.StockMin = *input.StockMin
	}
	if input.Location != nil {
		record.Location = *input.Location
	}
	record.UpdatedAt = time.Now()

	if err := uc.invRepo.UpdateFields(record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete elimina un SKU sin chequeo referencial: un checklist que lo
// referencie queda con la referencia colgando, como en el origen.
func (uc *InventoryUseCase) Delete(ctx context.Context, sku string) error {
	record, err := uc.invRepo.Get(sku)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	return uc.invRepo.Delete(sku)
}

// List devuelve todos los ítems de bodega.
func (uc *InventoryUseCase) List(ctx context.Context) ([]*entity.InventoryRecord, error) {
	return uc.invRepo.List()
}

// ListLowStock devuelve los ítems en o bajo su umbral, los más críticos
// primero. El dashboard depende de este orden.
func (uc *InventoryUseCase) ListLowStock(ctx context.Context) ([]*entity.InventoryRecord, error) {
	return uc.invRepo.ListLowStock()
}
