package memory

import (
	"sort"
	"time"

	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*inventoryRepo)(nil)

type inventoryRepo struct {
	s  *Store
	ds *dataset // no-nil dentro de una transacción
}

func (r *inventoryRepo) Get(sku string) (*entity.InventoryRecord, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	rec, ok := ds.inventory[sku]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

// GetForUpdate en memoria equivale a Get: la exclusión la da el mutex del store.
func (r *inventoryRepo) GetForUpdate(sku string) (*entity.InventoryRecord, error) {
	return r.Get(sku)
}

func (r *inventoryRepo) Create(record *entity.InventoryRecord) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if _, exists := ds.inventory[record.SKU]; exists {
		return domain.ErrDuplicateSKU
	}
	cp := *record
	ds.inventory[record.SKU] = &cp
	return nil
}

func (r *inventoryRepo) UpdateFields(record *entity.InventoryRecord) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	existing, ok := ds.inventory[record.SKU]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name = record.Name
	existing.Size = record.Size
	existing.Color = record.Color
	existing.StockMin = record.StockMin
	existing.Location = record.Location
	existing.UpdatedAt = record.UpdatedAt
	return nil
}

func (r *inventoryRepo) UpdateStock(sku string, stock int) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	existing, ok := ds.inventory[sku]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Stock = stock
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *inventoryRepo) Delete(sku string) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if _, ok := ds.inventory[sku]; !ok {
		return domain.ErrNotFound
	}
	delete(ds.inventory, sku)
	return nil
}

func (r *inventoryRepo) List() ([]*entity.InventoryRecord, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	out := make([]*entity.InventoryRecord, 0, len(ds.inventory))
	for _, rec := range ds.inventory {
		cp := *rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (r *inventoryRepo) ListLowStock() ([]*entity.InventoryRecord, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	var out []*entity.InventoryRecord
	for _, rec := range ds.inventory {
		if rec.IsLowStock() {
			cp := *rec
			out = append(out, &cp)
		}
	}
	// Orden contractual: stock ascendente, SKU como desempate estable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Stock != out[j].Stock {
			return out[i].Stock < out[j].Stock
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}
