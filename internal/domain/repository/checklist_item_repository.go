package repository

import "github.com/ong-capacita/logistica-api/internal/domain/entity"

// ChecklistItemRepository define el puerto de persistencia para ítems de
// checklist por curso.
type ChecklistItemRepository interface {
	Create(item *entity.ChecklistItem) error
	GetByID(id string) (*entity.ChecklistItem, error)
	Update(item *entity.ChecklistItem) error
	Delete(id string) error
	List() ([]*entity.ChecklistItem, error)
	ListByCourse(courseID string) ([]*entity.ChecklistItem, error)
	DeleteByCourse(courseID string) error
}
