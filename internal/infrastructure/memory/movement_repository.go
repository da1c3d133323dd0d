package memory

import (
	"sort"

	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*movementRepo)(nil)

type movementRepo struct {
	s  *Store
	ds *dataset
}

func (r *movementRepo) Create(movement *entity.Movement) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	ds.movementSeq++
	movement.ID = ds.movementSeq
	cp := *movement
	ds.movements = append(ds.movements, &cp)
	return nil
}

func (r *movementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()

	var out []*entity.Movement
	for _, mov := range ds.movements {
		if filter.Type != "" && mov.Type != filter.Type {
			continue
		}
		if filter.SKU != "" && mov.SKU != filter.SKU {
			continue
		}
		if filter.From != nil && mov.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && mov.Date.After(*filter.To) {
			continue
		}
		cp := *mov
		out = append(out, &cp)
	}

	// Más recientes primero; a igual fecha gana el ID mayor (orden de inserción).
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}
