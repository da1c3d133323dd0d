package memory

import (
	"sort"

	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

var _ repository.CourseRepository = (*courseRepo)(nil)

type courseRepo struct {
	s  *Store
	ds *dataset
}

func (r *courseRepo) Create(course *entity.Course) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if _, exists := ds.courses[course.ID]; exists {
		return domain.ErrInvalidInput
	}
	cp := *course
	ds.courses[course.ID] = &cp
	return nil
}

func (r *courseRepo) GetByID(id string) (*entity.Course, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	course, ok := ds.courses[id]
	if !ok {
		return nil, nil
	}
	cp := *course
	return &cp, nil
}

func (r *courseRepo) Update(course *entity.Course) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if _, ok := ds.courses[course.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *course
	ds.courses[course.ID] = &cp
	return nil
}

func (r *courseRepo) Delete(id string) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if _, ok := ds.courses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(ds.courses, id)
	return nil
}

func (r *courseRepo) List() ([]*entity.Course, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	out := make([]*entity.Course, 0, len(ds.courses))
	for _, course := range ds.courses {
		cp := *course
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *courseRepo) ExistsByTemplate(templateID string) (bool, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	for _, course := range ds.courses {
		if course.TemplateID == templateID {
			return true, nil
		}
	}
	return false, nil
}
