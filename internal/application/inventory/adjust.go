package inventory

import (
	"context"
	"time"

	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

// AdjustStockUseCase es el único camino por el que cambia el stock después de
// la creación de un ítem: valida, aplica el delta y anota el movimiento en la
// misma transacción (bloqueo de fila + Commit/Rollback).
type AdjustStockUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, movRepo: movRepo}
}

// AdjustInput entrada para un ajuste de stock.
type AdjustInput struct {
	SKU       string
	Quantity  int
	Type      string // entrada | salida
	Reference string
	User      string
}

// AdjustResult resultado de un ajuste: el ítem actualizado y el movimiento anotado.
type AdjustResult struct {
	Record   *entity.InventoryRecord
	Movement *entity.Movement
}

// Adjust aplica una entrada o salida de stock. Una salida que dejaría el stock
// negativo falla con ErrInsufficientStock sin ningún efecto. Cantidades cero o
// negativas fallan con ErrInvalidQuantity; no se reintenta nada.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, input AdjustInput) (*AdjustResult, error) {
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var result *AdjustResult
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error {
		res, err := applyAdjustment(invRepo, movRepo, input, time.Now())
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AdjustInTx ejecuta un ajuste usando repositorios ya atados a la transacción
// del caller. Lo usa la transición de checklist a "entregado", que descuenta
// stock en la misma tx que el cambio de estado.
func (uc *AdjustStockUseCase) AdjustInTx(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
	input AdjustInput,
	now time.Time,
) (*AdjustResult, error) {
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return applyAdjustment(invRepo, movRepo, input, now)
}

// applyAdjustment ejecuta el ajuste con repositorios ya atados a una
// transacción.
func applyAdjustment(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
	input AdjustInput,
	now time.Time,
) (*AdjustResult, error) {
	record, err := invRepo.GetForUpdate(input.SKU)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}

	newStock := record.Stock + input.Quantity
	if input.Type == entity.MovementTypeSalida {
		newStock = record.Stock - input.Quantity
	}
	if newStock < 0 {
		return nil, domain.ErrInsufficientStock
	}

	record.Stock = newStock
	record.UpdatedAt = now
	if err := invRepo.UpdateStock(input.SKU, newStock); err != nil {
		return nil, err
	}

	movement := &entity.Movement{
		Date:      now,
		Type:      input.Type,
		SKU:       input.SKU,
		Quantity:  input.Quantity,
		Reference: input.Reference,
		User:      input.User,
	}
	if err := movRepo.Create(movement); err != nil {
		return nil, err
	}
	return &AdjustResult{Record: record, Movement: movement}, nil
}

// ListMovements lista movimientos del libro, más recientes primero.
func (uc *AdjustStockUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Type != "" && !entity.ValidMovementType(filter.Type) {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.List(filter)
}
