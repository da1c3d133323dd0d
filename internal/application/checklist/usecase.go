package checklist

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ong-capacita/logistica-api/internal/application/inventory"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

// ItemUseCase administra los ítems de checklist de cada curso. La transición
// a "entregado" de un ítem de bodega es el único punto donde el estado del
// checklist toca el inventario, y se confirma en una sola transacción.
type ItemUseCase struct {
	itemRepo repository.ChecklistItemRepository
	txRunner TxRunner
	adjuster *inventory.AdjustStockUseCase
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	itemRepo repository.ChecklistItemRepository,
	txRunner TxRunner,
	adjuster *inventory.AdjustStockUseCase,
) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, txRunner: txRunner, adjuster: adjuster}
}

// CreateItemInput entrada para agregar un ítem manual al checklist.
type CreateItemInput struct {
	CourseID       string
	SKU            string
	Item           string
	Unit           string
	PlannedQty     int
	QtyPerAttendee *decimal.Decimal
	Origin         string
	Status         string
	Notes          string
}

// Create agrega un ítem manual. Sin origen explícito se deriva del SKU;
// sin estado explícito parte pendiente.
func (uc *ItemUseCase) Create(ctx context.Context, input CreateItemInput) (*entity.ChecklistItem, error) {
	if input.CourseID == "" || input.Item == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.PlannedQty < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	origin := input.Origin
	if origin == "" {
		origin = entity.OriginCompra
		if input.SKU != "" {
			origin = entity.OriginBodega
		}
	}
	if origin != entity.OriginBodega && origin != entity.OriginCompra {
		return nil, domain.ErrInvalidInput
	}

	status := input.Status
	if status == "" {
		status = entity.StatusPendiente
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	item := &entity.ChecklistItem{
		ID:             uuid.New().String(),
		CourseID:       input.CourseID,
		SKU:            input.SKU,
		Item:           input.Item,
		Unit:           input.Unit,
		PlannedQty:     input.PlannedQty,
		QtyPerAttendee: input.QtyPerAttendee,
		Origin:         origin,
		Status:         status,
		Notes:          input.Notes,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get obtiene un ítem por ID.
func (uc *ItemUseCase) Get(ctx context.Context, id string) (*entity.ChecklistItem, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// UpdateItemInput edición parcial de un ítem. Nil = sin cambio. Un cambio de
// Status pasa por la máquina de estados (ver Transition).
type UpdateItemInput struct {
	Status     *string
	Notes      *string
	PlannedQty *int
	User       string
}

// Update edita notas y cantidad planificada, y delega cambios de estado a
// Transition. Los campos no-estado se aplican primero para que una entrega en
// la misma petición descuente la cantidad recién editada.
func (uc *ItemUseCase) Update(ctx context.Context, id string, input UpdateItemInput) (*entity.ChecklistItem, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	changed := false
	if input.Notes != nil {
		item.Notes = *input.Notes
		changed = true
	}
	if input.PlannedQty != nil {
		if *input.PlannedQty < 0 {
			return nil, domain.ErrInvalidQuantity
		}
		item.PlannedQty = *input.PlannedQty
		changed = true
	}
	if changed {
		if err := uc.itemRepo.Update(item); err != nil {
			return nil, err
		}
	}

	if input.Status != nil && *input.Status != item.Status {
		return uc.Transition(ctx, id, *input.Status, input.User)
	}
	return item, nil
}

// Transition avanza el estado de un ítem. Solo se admite el paso siguiente de
// pendiente -> listo -> entregado; retrocesos y saltos fallan con
// ErrInvalidTransition. Al pasar a "entregado" un ítem de bodega, el descuento
// de stock, el movimiento de salida y el nuevo estado se confirman en la misma
// transacción: si no hay stock, el estado no cambia.
func (uc *ItemUseCase) Transition(ctx context.Context, id, newStatus, user string) (*entity.ChecklistItem, error) {
	if !entity.ValidStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(item.Status, newStatus) {
		return nil, domain.ErrInvalidTransition
	}

	if newStatus == entity.StatusEntregado && item.DrawsFromStock() {
		err := uc.txRunner.RunChecklist(ctx, func(
			invRepo repository.InventoryRepository,
			movRepo repository.MovementRepository,
			itemRepo repository.ChecklistItemRepository,
		) error {
			if _, err := uc.adjuster.AdjustInTx(invRepo, movRepo, inventory.AdjustInput{
				SKU:       item.SKU,
				Quantity:  item.PlannedQty,
				Type:      entity.MovementTypeSalida,
				Reference: "Curso " + item.CourseID,
				User:      user,
			}, time.Now()); err != nil {
				return err
			}
			item.Status = newStatus
			return itemRepo.Update(item)
		})
		if err != nil {
			return nil, err
		}
		return item, nil
	}

	item.Status = newStatus
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete elimina un ítem.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// List devuelve todos los ítems de checklist.
func (uc *ItemUseCase) List(ctx context.Context) ([]*entity.ChecklistItem, error) {
	return uc.itemRepo.List()
}

// ListByCourse devuelve los ítems de un curso.
func (uc *ItemUseCase) ListByCourse(ctx context.Context, courseID string) ([]*entity.ChecklistItem, error) {
	return uc.itemRepo.ListByCourse(courseID)
}

// DeleteAllForCourse elimina el checklist completo de un curso. Lo usa la
// cascada al borrar el curso y la limpieza previa a una regeneración.
func (uc *ItemUseCase) DeleteAllForCourse(ctx context.Context, courseID string) error {
	return uc.itemRepo.DeleteByCourse(courseID)
}
