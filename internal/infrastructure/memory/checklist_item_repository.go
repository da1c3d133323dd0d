package memory

import (
	"github.com/google/uuid"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

var _ repository.ChecklistItemRepository = (*checklistItemRepo)(nil)

type checklistItemRepo struct {
	s  *Store
	ds *dataset
}

func (r *checklistItemRepo) Create(item *entity.ChecklistItem) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if _, exists := ds.items[item.ID]; exists {
		return domain.ErrInvalidInput
	}
	cp := *item
	ds.items[item.ID] = &cp
	ds.itemOrder = append(ds.itemOrder, item.ID)
	return nil
}

func (r *checklistItemRepo) GetByID(id string) (*entity.ChecklistItem, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	item, ok := ds.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *checklistItemRepo) Update(item *entity.ChecklistItem) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if _, ok := ds.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	ds.items[item.ID] = &cp
	return nil
}

func (r *checklistItemRepo) Delete(id string) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if _, ok := ds.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(ds.items, id)
	removeID(&ds.itemOrder, id)
	return nil
}

func (r *checklistItemRepo) List() ([]*entity.ChecklistItem, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	out := make([]*entity.ChecklistItem, 0, len(ds.items))
	for _, id := range ds.itemOrder {
		cp := *ds.items[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *checklistItemRepo) ListByCourse(courseID string) ([]*entity.ChecklistItem, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	var out []*entity.ChecklistItem
	for _, id := range ds.itemOrder {
		if item := ds.items[id]; item.CourseID == courseID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *checklistItemRepo) DeleteByCourse(courseID string) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	kept := ds.itemOrder[:0]
	for _, id := range ds.itemOrder {
		if ds.items[id].CourseID == courseID {
			delete(ds.items, id)
			continue
		}
		kept = append(kept, id)
	}
	ds.itemOrder = kept
	return nil
}

func removeID(ids *[]string, id string) {
	for i, v := range *ids {
		if v == id {
			*ids = append((*ids)[:i], (*ids)[i+1:]...)
			return
		}
	}
}
