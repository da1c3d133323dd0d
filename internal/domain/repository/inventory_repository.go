package repository

import "github.com/ong-capacita/logistica-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para ítems de bodega.
// Get/GetForUpdate devuelven (nil, nil) si el SKU no existe; el caso de uso
// decide si eso es ErrNotFound. UpdateStock es de uso exclusivo del libro de
// movimientos, dentro de una transacción.
type InventoryRepository interface {
	Get(sku string) (*entity.InventoryRecord, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE en PostgreSQL).
	GetForUpdate(sku string) (*entity.InventoryRecord, error)
	Create(record *entity.InventoryRecord) error
	// UpdateFields actualiza solo campos descriptivos y updated_at, nunca stock.
	UpdateFields(record *entity.InventoryRecord) error
	UpdateStock(sku string, stock int) error
	Delete(sku string) error
	List() ([]*entity.InventoryRecord, error)
	// ListLowStock devuelve los ítems con stock <= stock_min, ordenados por
	// stock ascendente (los más críticos primero). El orden es contrato.
	ListLowStock() ([]*entity.InventoryRecord, error)
}
