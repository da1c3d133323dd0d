package memory

import (
	"sort"

	"github.com/google/uuid"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

var _ repository.TemplateRepository = (*templateRepo)(nil)

type templateRepo struct {
	s  *Store
	ds *dataset
}

func cloneTemplate(t *entity.ChecklistTemplate) *entity.ChecklistTemplate {
	cp := *t
	cp.Lines = append([]entity.TemplateLine(nil), t.Lines...)
	return &cp
}

func (r *templateRepo) Create(template *entity.ChecklistTemplate) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if template.ID == "" {
		template.ID = uuid.New().String()
	}
	if _, exists := ds.templates[template.ID]; exists {
		return domain.ErrInvalidInput
	}
	ds.templates[template.ID] = cloneTemplate(template)
	return nil
}

func (r *templateRepo) GetByID(id string) (*entity.ChecklistTemplate, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	tpl, ok := ds.templates[id]
	if !ok {
		return nil, nil
	}
	return cloneTemplate(tpl), nil
}

func (r *templateRepo) Update(template *entity.ChecklistTemplate) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if _, ok := ds.templates[template.ID]; !ok {
		return domain.ErrNotFound
	}
	ds.templates[template.ID] = cloneTemplate(template)
	return nil
}

func (r *templateRepo) Delete(id string) error {
	ds, release := acquire(r.s, r.ds)
	defer release()
	if _, ok := ds.templates[id]; !ok {
		return domain.ErrNotFound
	}
	delete(ds.templates, id)
	return nil
}

func (r *templateRepo) List() ([]*entity.ChecklistTemplate, error) {
	ds, release := acquire(r.s, r.ds)
	defer release()
	out := make([]*entity.ChecklistTemplate, 0, len(ds.templates))
	for _, tpl := range ds.templates {
		out = append(out, cloneTemplate(tpl))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
