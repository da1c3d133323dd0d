package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = "sku, name, size, color, stock, stock_min, location, updated_at"

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func scanInventory(row pgx.Row) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	var size, color, location *string
	err := row.Scan(&rec.SKU, &rec.Name, &size, &color, &rec.Stock, &rec.StockMin, &location, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.Size = fromNullable(size)
	rec.Color = fromNullable(color)
	rec.Location = fromNullable(location)
	return &rec, nil
}

// Get obtiene un ítem por SKU; (nil, nil) si no existe.
func (r *InventoryRepo) Get(sku string) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE sku = $1`
	rec, err := scanInventory(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return rec, nil
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE) para que
// el chequeo de stock y la escritura se serialicen entre ajustes concurrentes.
func (r *InventoryRepo) GetForUpdate(sku string) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE sku = $1 FOR UPDATE`
	rec, err := scanInventory(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return rec, nil
}

// Create inserta un ítem nuevo; SKU duplicado -> domain.ErrDuplicateSKU.
func (r *InventoryRepo) Create(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (sku, name, size, color, stock, stock_min, location, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		record.SKU, record.Name, nullable(record.Size), nullable(record.Color),
		record.Stock, record.StockMin, nullable(record.Location), record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("create inventory: %w", err)
	}
	return nil
}

// UpdateFields actualiza los campos descriptivos y updated_at. El stock no
// aparece en el SET: solo lo escribe UpdateStock dentro de un ajuste.
func (r *InventoryRepo) UpdateFields(record *entity.InventoryRecord) error {
	query := `
		UPDATE inventory
		SET name = $2, size = $3, color = $4, stock_min = $5, location = $6, updated_at = $7
		WHERE sku = $1`
	tag, err := r.q.Exec(context.Background(), query,
		record.SKU, record.Name, nullable(record.Size), nullable(record.Color),
		record.StockMin, nullable(record.Location), record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory fields: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock escribe el stock ya validado por el caso de uso de ajuste.
func (r *InventoryRepo) UpdateStock(sku string, stock int) error {
	query := `UPDATE inventory SET stock = $2, updated_at = now() WHERE sku = $1`
	tag, err := r.q.Exec(context.Background(), query, sku, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el ítem sin chequeo referencial.
func (r *InventoryRepo) Delete(sku string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE sku = $1`, sku)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los ítems ordenados por SKU.
func (r *InventoryRepo) List() ([]*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY sku`
	return r.list(query)
}

// ListLowStock devuelve los ítems con stock <= stock_min, stock ascendente.
func (r *InventoryRepo) ListLowStock() ([]*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory WHERE stock <= stock_min
		ORDER BY stock ASC, sku ASC`
	return r.list(query)
}

func (r *InventoryRepo) list(query string) ([]*entity.InventoryRecord, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		rec, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
