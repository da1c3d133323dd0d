package repository

import "github.com/ong-capacita/logistica-api/internal/domain/entity"

// TemplateRepository define el puerto de persistencia para las plantillas de
// checklist creadas por usuarios (la parte extensible del catálogo).
type TemplateRepository interface {
	Create(template *entity.ChecklistTemplate) error
	GetByID(id string) (*entity.ChecklistTemplate, error)
	Update(template *entity.ChecklistTemplate) error
	Delete(id string) error
	List() ([]*entity.ChecklistTemplate, error)
}
